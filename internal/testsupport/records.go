package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"movielog/internal/catalog"
)

// Record builds a minimal valid record for fixtures. Callers mutate the
// returned value to shape the case under test.
func Record(title, releaseDate, status string) *catalog.Record {
	return &catalog.Record{
		Title:            title,
		Year:             catalog.Year(releaseDate),
		Director:         "Unknown",
		Genres:           []string{},
		Status:           status,
		Actors:           []string{},
		Countries:        []string{},
		SpokenLanguages:  []string{},
		OriginalLanguage: "EN",
		ReleaseDate:      releaseDate,
		Poster:           catalog.PosterBaseURL,
	}
}

// WriteRecord encodes a record fixture into dir and returns the created path.
func WriteRecord(t testing.TB, dir string, record *catalog.Record, body string) string {
	t.Helper()

	data, err := catalog.Encode(record, body)
	if err != nil {
		t.Fatalf("encode fixture %s: %v", record.Title, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, catalog.Filename(record.Title, record.ReleaseDate))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}
