package report

import (
	"fmt"
	"strings"

	"github.com/IvanShishkin/dirlist/pkg/bytesize"
	"github.com/IvanShishkin/dirlist/pkg/models"
)

// renderMarkdown generates a Markdown report
func renderMarkdown(report *models.InventoryReport) []byte {
	var sb strings.Builder

	// Header
	sb.WriteString("# Directory Listing\n\n")

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Root | `%s` |\n", report.Root))
	sb.WriteString(fmt.Sprintf("| Start Time | %s |\n", report.StartTime.Format(models.TimeLayout)))
	sb.WriteString(fmt.Sprintf("| End Time | %s |\n", report.EndTime.Format(models.TimeLayout)))
	sb.WriteString(fmt.Sprintf("| Duration | %s |\n", FormatDuration(report.Duration)))
	sb.WriteString(fmt.Sprintf("| Files | %d |\n", report.Len()))
	sb.WriteString(fmt.Sprintf("| Total Size | %s (%d bytes) |\n", bytesize.Format(report.TotalBytes), report.TotalBytes))
	if report.StatFailures > 0 {
		sb.WriteString(fmt.Sprintf("| Stat Failures | %d |\n", report.StatFailures))
	}
	if report.DigestFailures > 0 {
		sb.WriteString(fmt.Sprintf("| Digest Failures | %d |\n", report.DigestFailures))
	}
	sb.WriteString("\n")

	if report.Len() == 0 {
		sb.WriteString("> No files found\n")
		return []byte(sb.String())
	}

	// Files
	header := report.Header()
	sb.WriteString("## Files\n\n")
	sb.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat("---|", len(header)) + "\n")
	for i := 0; i < report.Len(); i++ {
		row := report.Row(i)
		for j := range row {
			row[j] = escapeCell(row[j])
		}
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return []byte(sb.String())
}

// escapeCell keeps pipes and line breaks in a value from breaking the table
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", " ")
}
