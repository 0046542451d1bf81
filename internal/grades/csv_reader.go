package grades

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/DjordjeVuckovic/clo-analytics/internal/apperr"
	"github.com/DjordjeVuckovic/clo-analytics/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type CSVReaderOption func(*CSVReader)

// WithComma sets the field delimiter, e.g. ';' for spreadsheets exported with a European locale.
func WithComma(comma rune) CSVReaderOption {
	return func(cr *CSVReader) {
		cr.comma = comma
	}
}

type CSVReader struct {
	reader io.Reader
	comma  rune
}

func NewCSVReader(reader io.Reader, opts ...CSVReaderOption) *CSVReader {
	cr := &CSVReader{
		reader: reader,
		comma:  ',',
	}
	for _, opt := range opts {
		opt(cr)
	}
	return cr
}

// Read decodes every record as text. Rows may have different lengths.
func (cr *CSVReader) Read() (domain.RawGradesTable, error) {
	br := bufio.NewReader(cr.reader)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	csvReader := csv.NewReader(br)
	csvReader.Comma = cr.comma
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true

	var rows domain.RawGradesTable
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperr.NewInvalidInputWrap("failed to decode grades CSV", err)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, apperr.NewInvalidInput("grades file is empty")
	}

	return rows, nil
}
