package cliutil

import (
	"io"
	"strings"

	"golang.org/x/text/width"
)

// DisplayWidth returns the number of terminal cells s occupies, treating
// East Asian wide/fullwidth runes as two cells and everything else as
// one. len(s) and utf8.RuneCountInString both undercount a string
// containing wide runes, which misaligns table columns.
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// padRight returns s followed by enough spaces to reach width cols, per
// DisplayWidth. s is returned unchanged if it already meets or exceeds
// width.
func padRight(s string, width int) string {
	if pad := width - DisplayWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// Row is one line of a Table: a fixture name, a status ("PASS"/"FAIL"),
// and an optional detail string shown in the third column.
type Row struct {
	Name   string
	Status string
	Detail string
}

// WriteTable writes rows to w as a column-aligned summary table, sizing
// the name and status columns to the widest entry in each so the detail
// column lines up even when a name contains wide runes.
func WriteTable(w io.Writer, rows []Row) {
	var nameWidth, statusWidth int
	for _, r := range rows {
		nameWidth = max(nameWidth, DisplayWidth(r.Name))
		statusWidth = max(statusWidth, DisplayWidth(r.Status))
	}

	for _, r := range rows {
		line := padRight(r.Status, statusWidth) + "  " + padRight(r.Name, nameWidth)
		if r.Detail != "" {
			line += "  " + r.Detail
		}
		Writef(w, "%s\n", line)
	}
}
