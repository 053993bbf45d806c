package importer

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Row is one data row keyed by column header. Rows are ephemeral; they
// exist only for the duration of one parse pass.
type Row map[string]string

// readRows decodes a CSV stream into its header set and header-keyed data
// rows. Fully empty rows are skipped, matching how spreadsheet exports pad
// their output.
func readRows(r io.Reader) ([]string, []Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // some banks pad or truncate trailing columns

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("missing header row")
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isEmptyRecord(rec) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func isEmptyRecord(rec []string) bool {
	for _, field := range rec {
		if field != "" {
			return false
		}
	}
	return true
}
