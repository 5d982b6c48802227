package report

import (
	"strings"

	"github.com/IvanShishkin/dirlist/pkg/models"
)

// fieldSep separates columns in the text format
const fieldSep = ", "

// renderText produces the comma-space listing. Fields are not quoted, so a
// path containing ", " is ambiguous; use the csv format when that matters.
func renderText(report *models.InventoryReport) []byte {
	var sb strings.Builder

	// Header
	sb.WriteString(strings.Join(report.Header(), fieldSep))
	sb.WriteString("\n")

	// Rows
	for i := 0; i < report.Len(); i++ {
		sb.WriteString(strings.Join(report.Row(i), fieldSep))
		sb.WriteString("\n")
	}

	return []byte(sb.String())
}
