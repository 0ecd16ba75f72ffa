package importer

import (
	"regexp"
	"strings"

	"movielog/internal/catalog"
	"movielog/internal/services"
)

// Entry is a normalized row ready for metadata resolution. Year is the hint
// lifted from a trailing "(YYYY)" suffix and stays empty when the label
// carried none.
type Entry struct {
	Row    int
	Title  string
	Year   string
	Status string
}

var yearSuffix = regexp.MustCompile(`\((\d{4})\)\s*$`)

// Normalize extracts the title, optional year hint, and watch status from a
// raw row. Labels that reduce to nothing, or to the literal spreadsheet
// artifact "nan", are skipped. The status cell maps to watched only on an
// exact post-trim match; anything ambiguous stays to-watch.
func Normalize(row Row) (Entry, error) {
	label := strings.TrimSpace(row.Label)
	title := label
	year := ""
	if m := yearSuffix.FindStringSubmatchIndex(label); m != nil {
		title = strings.TrimSpace(label[:m[0]])
		year = label[m[2]:m[3]]
	}
	if title == "" || strings.EqualFold(title, "nan") {
		return Entry{}, services.Wrap(services.ErrSkippedRow, "normalizing", "extract title", "no title", nil)
	}

	status := catalog.StatusToWatch
	if strings.TrimSpace(row.Status) == catalog.StatusWatched {
		status = catalog.StatusWatched
	}
	return Entry{Row: row.Number, Title: title, Year: year, Status: status}, nil
}
