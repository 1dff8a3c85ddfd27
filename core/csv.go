package core

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmmkit/decomp/schema"
)

// ToCSV renders records as CSV text with a Date column followed by columnOrder.
// Missing values become empty fields. Output is byte-identical for identical input.
func ToCSV(records []schema.AlignedRecord, columnOrder []string) string {
	var sb strings.Builder
	// strings.Builder never fails a write.
	_ = WriteCSV(&sb, records, columnOrder)
	return sb.String()
}

// WriteCSV streams the same encoding as ToCSV to w.
func WriteCSV(w io.Writer, records []schema.AlignedRecord, columnOrder []string) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(columnOrder)+1)
	header = append(header, schema.DateColumn)
	header = append(header, columnOrder...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(header))
	for _, rec := range records {
		row[0] = rec.Date
		for j, col := range columnOrder {
			row[j+1] = formatCSVValue(rec, col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", rec.Date, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCSVValue(rec schema.AlignedRecord, col string) string {
	v, ok := rec.Value(col)
	if !ok || v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
