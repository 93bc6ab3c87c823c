package metadata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/isu-meta/marcup/helpers"
)

// ParseOptions configures CSV parsing.
type ParseOptions struct {
	// Aliases maps source header names to canonical column names, applied
	// after header whitespace is trimmed.
	Aliases map[string]string
	// StripHTML removes markup from cell values. Exports from web content
	// systems often carry HTML in description cells.
	StripHTML bool
	// Normalize applies Unicode NFC normalization to every cell value, so
	// exports from NFD-producing tools aggregate consistently.
	Normalize bool
	// SourceName identifies the input in diagnostics.
	SourceName string
}

// NewParseOptions returns default parse options.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{}
}

// Parse reads CSV and returns one Row per data row. The first CSV row is
// the header; header names are whitespace-trimmed but keep their case,
// since column names are case-sensitive. Cells missing from a short row
// are absent from the Row rather than empty. Empty input yields no rows
// and no error.
func Parse(r io.Reader, opts *ParseOptions) ([]Row, error) {
	if opts == nil {
		opts = NewParseOptions()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		name = strings.TrimSpace(name)
		if canonical, ok := opts.Aliases[name]; ok {
			name = canonical
		}
		header[i] = name
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, value := range record {
			if i >= len(header) {
				break
			}
			if opts.StripHTML {
				value = helpers.StripHTML(value)
			}
			if opts.Normalize {
				value = norm.NFC.String(value)
			}
			row[header[i]] = value
		}
		rows = append(rows, row)
	}

	return rows, nil
}
