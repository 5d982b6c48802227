package report

import (
	"encoding/json"
	"time"

	"github.com/IvanShishkin/dirlist/pkg/bytesize"
	"github.com/IvanShishkin/dirlist/pkg/models"
)

// Document is the structured form shared by the json and yaml formats
type Document struct {
	Root           string             `json:"root" yaml:"root"`
	StartTime      time.Time          `json:"start_time" yaml:"start_time"`
	EndTime        time.Time          `json:"end_time" yaml:"end_time"`
	Duration       string             `json:"duration" yaml:"duration"`
	FileCount      int                `json:"file_count" yaml:"file_count"`
	TotalBytes     uint64             `json:"total_bytes" yaml:"total_bytes"`
	TotalSize      string             `json:"total_size" yaml:"total_size"`
	StatFailures   int                `json:"stat_failures" yaml:"stat_failures"`
	DigestFailures int                `json:"digest_failures" yaml:"digest_failures"`
	Algorithms     []models.Algorithm `json:"algorithms" yaml:"algorithms"`
	Files          []FileEntry        `json:"files" yaml:"files"`
}

// FileEntry is one file in a Document. Values that could not be read carry
// the "-1" sentinel, the same as the text format.
type FileEntry struct {
	Path         string                      `json:"path" yaml:"path"`
	SizeBytes    int64                       `json:"size_bytes" yaml:"size_bytes"`
	SizeString   string                      `json:"size_string" yaml:"size_string"`
	CreateTime   string                      `json:"create_time" yaml:"create_time"`
	AccessedTime string                      `json:"accessed_time" yaml:"accessed_time"`
	ModifiedTime string                      `json:"modified_time" yaml:"modified_time"`
	FileType     string                      `json:"file_type" yaml:"file_type"`
	Digests      map[models.Algorithm]string `json:"digests,omitempty" yaml:"digests,omitempty"`
	Errors       []string                    `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewDocument converts an inventory report into its structured form
func NewDocument(report *models.InventoryReport) *Document {
	doc := &Document{
		Root:           report.Root,
		StartTime:      report.StartTime,
		EndTime:        report.EndTime,
		Duration:       FormatDuration(report.Duration),
		FileCount:      report.Len(),
		TotalBytes:     report.TotalBytes,
		TotalSize:      bytesize.Format(report.TotalBytes),
		StatFailures:   report.StatFailures,
		DigestFailures: report.DigestFailures,
		Algorithms:     report.Algorithms,
		Files:          make([]FileEntry, 0, report.Len()),
	}
	if doc.Algorithms == nil {
		doc.Algorithms = []models.Algorithm{}
	}

	for i, rec := range report.Records {
		fields := report.Row(i)
		entry := FileEntry{
			Path:         rec.Path,
			SizeBytes:    int64(rec.SizeBytes),
			SizeString:   fields[2],
			CreateTime:   fields[3],
			AccessedTime: fields[4],
			ModifiedTime: fields[5],
			FileType:     fields[6],
		}
		if rec.StatErr != nil {
			entry.SizeBytes = -1
			entry.Errors = append(entry.Errors, rec.StatErr.Error())
		}

		if len(report.Algorithms) > 0 {
			entry.Digests = make(map[models.Algorithm]string, len(report.Algorithms))
			for j, alg := range report.Algorithms {
				entry.Digests[alg] = fields[len(models.BaseColumns)+j]
				if d, ok := rec.Digests[alg]; ok && d.Err != nil {
					entry.Errors = append(entry.Errors, d.Err.Error())
				}
			}
		}

		doc.Files = append(doc.Files, entry)
	}

	return doc
}

// renderJSON generates a JSON report
func renderJSON(report *models.InventoryReport) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(report), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
