package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"movielog/internal/services"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadRowsSkipsHeader(t *testing.T) {
	path := writeCSV(t, "index,title,status\n1,Parasite (2019),watched\n2,Heat,\n")

	rows, err := ReadRows(path, true)
	if err != nil {
		t.Fatalf("ReadRows returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Label != "Parasite (2019)" || rows[0].Status != "watched" {
		t.Fatalf("unexpected first row: %#v", rows[0])
	}
	if rows[0].Number != 1 || rows[1].Number != 2 {
		t.Fatalf("unexpected row numbers: %d, %d", rows[0].Number, rows[1].Number)
	}
}

func TestReadRowsKeepsHeaderWhenDisabled(t *testing.T) {
	path := writeCSV(t, "1,Parasite (2019),watched\n")

	rows, err := ReadRows(path, false)
	if err != nil {
		t.Fatalf("ReadRows returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Label != "Parasite (2019)" {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestReadRowsMarksShortRows(t *testing.T) {
	path := writeCSV(t, "1,Parasite (2019),watched\nonly-one-field\n3,Heat,\n")

	rows, err := ReadRows(path, false)
	if err != nil {
		t.Fatalf("ReadRows returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1].Err == nil || !errors.Is(rows[1].Err, services.ErrSkippedRow) {
		t.Fatalf("short row should carry skip error, got %v", rows[1].Err)
	}
	if rows[2].Err != nil {
		t.Fatalf("row after short row should parse, got %v", rows[2].Err)
	}
}

func TestReadRowsAllowsVariableFieldCounts(t *testing.T) {
	path := writeCSV(t, "1,Parasite (2019),watched,extra,fields\n2,Heat,,\n")

	rows, err := ReadRows(path, false)
	if err != nil {
		t.Fatalf("ReadRows returned error: %v", err)
	}
	if len(rows) != 2 || rows[0].Err != nil || rows[1].Err != nil {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestReadRowsMissingFile(t *testing.T) {
	if _, err := ReadRows(filepath.Join(t.TempDir(), "absent.csv"), true); err == nil {
		t.Fatal("expected error for missing document")
	}
}

func TestReadRowsEmptyDocument(t *testing.T) {
	path := writeCSV(t, "")

	rows, err := ReadRows(path, true)
	if err != nil {
		t.Fatalf("ReadRows returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
