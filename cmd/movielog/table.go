package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable lays out rows under headers with the rounded style used across
// the CLI. Short rows pad with blanks; a nil aligns slice means every column
// is left aligned.
func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	if len(headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(headerRow(headers))
	for _, row := range rows {
		tw.AppendRow(paddedRow(row, len(headers)))
	}
	tw.SetColumnConfigs(columnConfigs(len(headers), aligns))
	return tw.Render()
}

// renderNumberedTable renders rows with a leading right-aligned "#" column
// holding each row's 1-based position. Offset shifts the numbering so a page
// deep in the library keeps its absolute positions.
func renderNumberedTable(headers []string, rows [][]string, aligns []columnAlignment, offset int) string {
	numberedHeaders := append([]string{"#"}, headers...)
	numberedAligns := append([]columnAlignment{alignRight}, aligns...)
	numberedRows := make([][]string, 0, len(rows))
	for i, row := range rows {
		numbered := append([]string{strconv.Itoa(offset + i + 1)}, row...)
		numberedRows = append(numberedRows, numbered)
	}
	return renderTable(numberedHeaders, numberedRows, numberedAligns)
}

func headerRow(headers []string) table.Row {
	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	return header
}

func paddedRow(row []string, width int) table.Row {
	cells := make(table.Row, width)
	for i := 0; i < width; i++ {
		if i < len(row) {
			cells[i] = row[i]
		} else {
			cells[i] = ""
		}
	}
	return cells
}

func columnConfigs(width int, aligns []columnAlignment) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, width)
	for i := 0; i < width; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	return configs
}
