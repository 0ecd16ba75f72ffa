package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Field selects which record attribute a search matches against.
type Field string

const (
	FieldTitle    Field = "title"
	FieldDirector Field = "director"
	FieldActor    Field = "actor"
	// FieldKeyword matches across title, director, genres, and actors.
	FieldKeyword Field = "keyword"
)

// ParseField validates a user-supplied search field name.
func ParseField(value string) (Field, error) {
	switch Field(strings.ToLower(strings.TrimSpace(value))) {
	case FieldTitle:
		return FieldTitle, nil
	case FieldDirector:
		return FieldDirector, nil
	case FieldActor:
		return FieldActor, nil
	case FieldKeyword, "":
		return FieldKeyword, nil
	default:
		return "", fmt.Errorf("unknown search field %q (want title, director, actor, or keyword)", value)
	}
}

// Search filters records by case-insensitive substring match on the selected
// field. Input order is preserved.
func Search(records []*Record, query string, field Field) []*Record {
	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]*Record, 0, len(records))
	for _, record := range records {
		if matchesField(record, needle, field) {
			matches = append(matches, record)
		}
	}
	return matches
}

func matchesField(record *Record, needle string, field Field) bool {
	switch field {
	case FieldTitle:
		return containsFold(record.Title, needle)
	case FieldDirector:
		return containsFold(record.Director, needle)
	case FieldActor:
		return anyContainsFold(record.Actors, needle)
	default:
		return containsFold(record.Title, needle) ||
			containsFold(record.Director, needle) ||
			anyContainsFold(record.Genres, needle) ||
			anyContainsFold(record.Actors, needle)
	}
}

func containsFold(value, needle string) bool {
	return strings.Contains(strings.ToLower(value), needle)
}

func anyContainsFold(values []string, needle string) bool {
	for _, value := range values {
		if containsFold(value, needle) {
			return true
		}
	}
	return false
}

// BrowseView selects records by watch status and orders them by year
// ascending. Records without a known year sort after everything else.
func BrowseView(records []*Record, watched bool) []*Record {
	status := StatusToWatch
	if watched {
		status = StatusWatched
	}
	view := make([]*Record, 0, len(records))
	for _, record := range records {
		if record.Status == status {
			view = append(view, record)
		}
	}
	sort.SliceStable(view, func(i, j int) bool {
		return browseYear(view[i].Year) < browseYear(view[j].Year)
	})
	return view
}

func browseYear(year int) int {
	if year <= 0 {
		return 9999
	}
	return year
}
