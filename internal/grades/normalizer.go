package grades

import (
	"math"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/domain"
)

// Normalize turns a raw grades table into a numeric table aligned to expected.
//
// The first non-empty row is dropped when at least half of its cells fail to parse as
// numbers. The trailing len(expected) columns are kept and named positionally; leading
// columns are assumed to be student identifiers. Unparsable cells become missing values
// and rows with no values left are dropped. Every downgrade is counted in the diagnostics.
func Normalize(raw domain.RawGradesTable, expected []string) (*domain.GradesTable, domain.NormalizeDiagnostics, error) {
	var diag domain.NormalizeDiagnostics

	n := len(expected)
	if n == 0 {
		return nil, diag, apperr.NewInvalidInput("no assessment columns to align grades to")
	}

	rows := make([][]string, 0, len(raw))
	width := 0
	for _, r := range raw {
		cells := make([]string, len(r))
		empty := true
		for i, c := range r {
			cells[i] = strings.TrimSpace(c)
			if cells[i] != "" {
				empty = false
			}
		}
		if empty {
			diag.EmptyRowsDropped++
			continue
		}
		rows = append(rows, cells)
		width = max(width, len(cells))
	}

	if len(rows) == 0 {
		return nil, diag, apperr.NewInvalidInput("grades table has no rows")
	}

	if IsHeaderRow(pad(rows[0], width)) {
		diag.HeaderDropped = true
		diag.Header = rows[0]
		rows = rows[1:]
	}

	if width < n {
		return nil, diag, &apperr.InsufficientColumnsError{Expected: n, Got: width}
	}
	offset := width - n
	diag.LeadingColumnsDropped = offset

	table := &domain.GradesTable{
		Columns: append([]string(nil), expected...),
		Rows:    make([][]domain.Score, 0, len(rows)),
	}

	for _, r := range rows {
		r = pad(r, width)
		scores := make([]domain.Score, n)
		valid := false
		for i := range scores {
			cell := r[offset+i]
			if cell == "" {
				continue
			}
			v, ok := parseScore(cell)
			if !ok {
				diag.CoercedCells++
				continue
			}
			scores[i] = domain.NewScore(v)
			valid = true
		}
		if !valid {
			diag.MissingRowsDropped++
			continue
		}
		table.Rows = append(table.Rows, scores)
	}

	return table, diag, nil
}

// IsHeaderRow reports whether at least half of the row's cells are non-numeric text.
// Empty cells count towards the row length but are not parse failures.
func IsHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	failed := 0
	for _, c := range row {
		if c == "" {
			continue
		}
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			failed++
		}
	}
	return 2*failed >= len(row)
}

func parseScore(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
