package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"movielog/internal/services"
)

// Row is one data row lifted from the spreadsheet. Only the label and status
// columns carry meaning; everything else in the row is ignored. Rows that
// could not be read keep their position and carry the skip error instead.
type Row struct {
	Number int
	Label  string
	Status string
	Err    error
}

// ReadRows loads every data row from the CSV document at path. When
// skipHeader is set the first row is consumed and discarded. Rows that are
// too short or fail to parse become skip entries so one bad line never
// aborts the run; only an unreadable document is an error.
func ReadRows(path string, skipHeader bool) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	if skipHeader {
		if _, err := reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, fmt.Errorf("read header: %w", err)
		}
	}

	var rows []Row
	number := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		number++
		if err != nil {
			rows = append(rows, Row{
				Number: number,
				Err:    services.Wrap(services.ErrSkippedRow, "reading", "parse row", "malformed row", err),
			})
			continue
		}
		if len(record) < 3 {
			rows = append(rows, Row{
				Number: number,
				Err:    services.Wrap(services.ErrSkippedRow, "reading", "parse row", "missing columns", nil),
			})
			continue
		}
		rows = append(rows, Row{Number: number, Label: record[1], Status: record[2]})
	}
	return rows, nil
}
