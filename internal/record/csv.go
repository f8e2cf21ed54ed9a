package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ParseFile reads all records from a CSV or TSV file, choosing the
// delimiter by file extension. The first row must be a header containing
// every required column.
func ParseFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts file: %w", err)
	}
	defer f.Close()

	delimiter := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		delimiter = '\t'
	}

	records, err := Parse(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Parse reads records from r using the given delimiter. It validates the
// header before reading any rows.
func Parse(r io.Reader, delimiter rune) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("no header row found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		field := func(col string) string {
			i := index[col]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}

		rec := Record{
			Name:        field("name"),
			Description: field("description"),
			TopSymbol:   field("top_symbol"),
			SideSymbol:  field("side_symbol"),
			ReorderURL:  field("reorder_url"),
		}
		rec.normalize()
		records = append(records, rec)
	}

	return records, nil
}
