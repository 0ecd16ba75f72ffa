package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// NotesPlaceholder fills the notes section of records written without any
// user commentary.
const NotesPlaceholder = "(Your thoughts go here)"

// ComposeBody renders the markdown body that follows the front matter. Empty
// notes get the placeholder so the section is always present for editing.
func ComposeBody(overview, notes string) string {
	if strings.TrimSpace(notes) == "" {
		notes = NotesPlaceholder
	}
	var body strings.Builder
	body.WriteString("## Synopsis\n\n")
	body.WriteString(strings.TrimSpace(overview))
	body.WriteString("\n\n## My Notes\n\n")
	body.WriteString(strings.TrimRight(notes, "\n"))
	body.WriteString("\n")
	return body.String()
}

// Encode serializes a record and body into the on-disk document form. List
// fields are forced non-nil first so an empty list marshals as `[]` rather
// than null.
func Encode(record *Record, body string) ([]byte, error) {
	if record == nil {
		return nil, errors.New("catalog: nil record")
	}
	normalized := *record
	normalized.Genres = ensureList(normalized.Genres)
	normalized.Actors = ensureList(normalized.Actors)
	normalized.Countries = ensureList(normalized.Countries)
	normalized.SpokenLanguages = ensureList(normalized.SpokenLanguages)

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter + "\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&normalized); err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}
	buf.WriteString(frontMatterDelimiter + "\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

// Decode parses an on-disk document back into its record and body.
func Decode(data []byte) (*Record, string, error) {
	head, body, err := splitFrontMatter(string(data))
	if err != nil {
		return nil, "", err
	}
	var record Record
	if err := yaml.Unmarshal([]byte(head), &record); err != nil {
		return nil, "", fmt.Errorf("parse front matter: %w", err)
	}
	return &record, body, nil
}

func splitFrontMatter(text string) (string, string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rest, found := strings.CutPrefix(text, frontMatterDelimiter+"\n")
	if !found {
		return "", "", errors.New("missing front matter delimiter")
	}
	if idx := strings.Index(rest, "\n"+frontMatterDelimiter+"\n"); idx >= 0 {
		head := rest[:idx]
		body := rest[idx+len(frontMatterDelimiter)+2:]
		return head, strings.TrimLeft(body, "\n"), nil
	}
	if head, found := strings.CutSuffix(rest, "\n"+frontMatterDelimiter); found {
		return head, "", nil
	}
	return "", "", errors.New("unterminated front matter")
}

func ensureList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
