// Package parser converts raw delimited result exports into typed records.
//
// Column resolution is name-based rather than positional: each logical
// field is located by a case-insensitive substring match against the header
// row, so minor header renames across dataset vintages do not break a load.
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// field binds a logical field name to a header matcher. Matchers are
// resolved once per parse against the header row.
type field struct {
	name  string
	match func(header string) bool
}

// contains returns a matcher that accepts any header containing sub
// (case-insensitive).
func contains(sub string) func(string) bool {
	sub = strings.ToLower(sub)
	return func(header string) bool {
		return strings.Contains(strings.ToLower(header), sub)
	}
}

// equals returns a matcher that accepts an exact header (case-insensitive,
// surrounding whitespace ignored).
func equals(want string) func(string) bool {
	want = strings.ToLower(want)
	return func(header string) bool {
		return strings.ToLower(strings.TrimSpace(header)) == want
	}
}

// columns maps logical field names to header indexes for one parse call.
type columns map[string]int

// resolve matches each field against the header row. The first matching
// header wins; fields with no matching header are simply absent and read
// as empty.
func resolve(headers []string, fields []field) columns {
	cols := make(columns, len(fields))
	for _, f := range fields {
		for i, h := range headers {
			if f.match(h) {
				cols[f.name] = i
				break
			}
		}
	}
	return cols
}

// get returns the cell for a logical field, or "" when the field or cell
// is missing from the row.
func (c columns) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseInt parses a vote count, stripping thousands separators. Malformed
// cells (including the "-" used for absent postal counts) read as 0 so a
// bad cell never aborts a load.
func parseInt(s string) int {
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// readRows parses raw CSV text into a header row and data rows. Rows with
// uneven column counts are kept; rows the CSV reader rejects outright are
// skipped rather than failing the load.
func readRows(text string) ([]string, [][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headers, err := r.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header row: %w", err)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}
