package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/IvanShishkin/dirlist/pkg/models"
	"go.uber.org/zap"
)

// Report formats
const (
	FormatText     = "text"
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "md"
)

// Formats lists every supported report format
var Formats = []string{FormatText, FormatCSV, FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat normalizes a format name and its common aliases
func ParseFormat(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown report format: %s", name)
	}
}

// FormatDuration formats duration to a human-readable string with max 2 decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		// Milliseconds
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		// Seconds
		return fmt.Sprintf("%.2fs", d.Seconds())
	} else if d < time.Hour {
		// Minutes and seconds
		mins := int(d.Minutes())
		secs := d.Seconds() - float64(mins*60)
		return fmt.Sprintf("%dm%.2fs", mins, secs)
	}
	// Hours, minutes and seconds
	hours := int(d.Hours())
	mins := int(d.Minutes()) - hours*60
	secs := d.Seconds() - float64(hours*3600) - float64(mins*60)
	return fmt.Sprintf("%dh%dm%.2fs", hours, mins, secs)
}

// Generator renders inventory reports in various formats
type Generator struct {
	format string
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(format string, logger *zap.Logger) (*Generator, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Generator{
		format: f,
		logger: logger,
	}, nil
}

// Format returns the normalized output format
func (g *Generator) Format() string {
	return g.format
}

// Render returns the complete report document
func (g *Generator) Render(report *models.InventoryReport) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch g.format {
	case FormatText:
		data = renderText(report)
	case FormatCSV:
		data, err = renderCSV(report)
	case FormatJSON:
		data, err = renderJSON(report)
	case FormatYAML:
		data, err = renderYAML(report)
	case FormatMarkdown:
		data = renderMarkdown(report)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to generate %s report: %w", g.format, err)
	}
	return data, nil
}

// Write renders the report into outputFile. Any failure is a KindOutputWrite
// error; the report itself is left untouched so the caller can fall back.
func (g *Generator) Write(report *models.InventoryReport, outputFile string) error {
	g.logger.Info("Generating report",
		zap.String("format", g.format),
		zap.String("output", outputFile))

	data, err := g.Render(report)
	if err != nil {
		return models.NewError(models.KindOutputWrite, "render", outputFile, err)
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		g.logger.Warn("Failed to write report", zap.String("output", outputFile), zap.Error(err))
		return models.NewError(models.KindOutputWrite, "write", outputFile, err)
	}
	return nil
}
