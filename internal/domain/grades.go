package domain

import "strconv"

// RawGradesTable is a grades table as decoded from an upload, before any cleaning.
type RawGradesTable [][]string

// Score is a single numeric cell. Valid is false for missing values.
type Score struct {
	Value float64
	Valid bool
}

func NewScore(v float64) Score {
	return Score{Value: v, Valid: true}
}

func (s Score) String() string {
	if !s.Valid {
		return ""
	}
	return strconv.FormatFloat(s.Value, 'g', -1, 64)
}

// GradesTable is a rectangular numeric table, one row per student.
type GradesTable struct {
	Columns []string
	Rows    [][]Score
}

func (t *GradesTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the values of the named column, or false when it does not exist.
func (t *GradesTable) Column(name string) ([]Score, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	col := make([]Score, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[idx]
	}
	return col, true
}

// Records renders the table back into text rows, header first.
func (t *GradesTable) Records() RawGradesTable {
	out := make(RawGradesTable, 0, len(t.Rows)+1)
	out = append(out, append([]string(nil), t.Columns...))
	for _, row := range t.Rows {
		rec := make([]string, len(row))
		for i, s := range row {
			rec[i] = s.String()
		}
		out = append(out, rec)
	}
	return out
}

// NormalizeDiagnostics counts every tolerant downgrade made while cleaning a raw table.
type NormalizeDiagnostics struct {
	EmptyRowsDropped      int      `json:"emptyRowsDropped"`
	HeaderDropped         bool     `json:"headerDropped"`
	Header                []string `json:"header,omitempty"`
	LeadingColumnsDropped int      `json:"leadingColumnsDropped"`
	CoercedCells          int      `json:"coercedCells"`
	MissingRowsDropped    int      `json:"missingRowsDropped"`
}
