package report

import (
	"bytes"
	"encoding/csv"

	"github.com/IvanShishkin/dirlist/pkg/models"
)

// renderCSV writes the same columns as the text format with RFC 4180 quoting
func renderCSV(report *models.InventoryReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(report.Header()); err != nil {
		return nil, err
	}
	for i := 0; i < report.Len(); i++ {
		if err := w.Write(report.Row(i)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
