package models

import "time"

// BaseColumns are the header columns present in every report
var BaseColumns = []string{
	"File Names",
	"File Size Bytes",
	"File Size String",
	"Create Time",
	"Accessed Time",
	"Modified Time",
	"FileType",
}

// ScanOptions configures a single inventory run
type ScanOptions struct {
	RootPath      string
	IncludeMD5    bool
	IncludeSHA1   bool
	IncludeSHA256 bool
	Verbose       bool
}

// Algorithms returns the enabled digest algorithms in column order
func (o ScanOptions) Algorithms() []Algorithm {
	var algs []Algorithm
	if o.IncludeMD5 {
		algs = append(algs, MD5)
	}
	if o.IncludeSHA1 {
		algs = append(algs, SHA1)
	}
	if o.IncludeSHA256 {
		algs = append(algs, SHA256)
	}
	return algs
}

// InventoryReport contains the complete inventory of one scan
type InventoryReport struct {
	// Summary
	Root       string        `json:"root"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"`
	Duration   time.Duration `json:"duration"`
	TotalBytes uint64        `json:"total_bytes"`

	// Columns
	Algorithms []Algorithm `json:"algorithms"`

	// Rows in discovery order
	Records []*FileRecord `json:"-"`

	// Degraded rows
	StatFailures   int `json:"stat_failures"`
	DigestFailures int `json:"digest_failures"`
}

// NewInventoryReport creates an empty report for the given options
func NewInventoryReport(opts ScanOptions) *InventoryReport {
	return &InventoryReport{
		Root:       opts.RootPath,
		Algorithms: opts.Algorithms(),
	}
}

// Header returns the column names, optional digest columns last
func (r *InventoryReport) Header() []string {
	header := make([]string, 0, len(BaseColumns)+len(r.Algorithms))
	header = append(header, BaseColumns...)
	for _, alg := range r.Algorithms {
		header = append(header, string(alg))
	}
	return header
}

// Row returns the fields of the i-th record
func (r *InventoryReport) Row(i int) []string {
	return r.Records[i].Fields(r.Algorithms)
}

// Add appends a record and updates the totals
func (r *InventoryReport) Add(rec *FileRecord) {
	r.Records = append(r.Records, rec)
	r.TotalBytes += rec.SizeBytes

	if rec.StatErr != nil {
		r.StatFailures++
	}
	for _, alg := range r.Algorithms {
		if d, ok := rec.Digests[alg]; ok && !d.OK() {
			r.DigestFailures++
		}
	}
}

// Len returns the number of rows
func (r *InventoryReport) Len() int {
	return len(r.Records)
}
