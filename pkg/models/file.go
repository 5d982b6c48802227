package models

import (
	"fmt"
	"time"
)

// SentinelFailed is written in place of a value that could not be computed
const SentinelFailed = "-1"

// MimeUnknown is recorded when a file's content matches no known signature
const MimeUnknown = "unknown"

// Algorithm names a digest algorithm
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
)

// Algorithms lists every supported algorithm in report column order
var Algorithms = []Algorithm{MD5, SHA1, SHA256}

// Digest is the outcome of hashing one file with one algorithm
type Digest struct {
	Hex string // Lowercase hex digest, empty on failure
	Err error  // Read failure, nil on success
}

// OK reports whether the digest was computed
func (d Digest) OK() bool {
	return d.Err == nil
}

// String returns the hex digest, or the failure sentinel
func (d Digest) String() string {
	if d.Err != nil {
		return SentinelFailed
	}
	return d.Hex
}

// FileRecord is one inventory row
type FileRecord struct {
	Path       string               // Path as discovered under the scan root
	SizeBytes  uint64               // Size in bytes
	SizeHuman  string               // Human-readable size
	CreatedAt  time.Time            // Birth time, or inode change time where unavailable
	AccessedAt time.Time            // Last access time
	ModifiedAt time.Time            // Last modification time
	MimeType   string               // Sniffed content type, or MimeUnknown
	Digests    map[Algorithm]Digest // Only requested algorithms are present
	StatErr    error                // Set when size and timestamps could not be read
}

// FileInfo contains basic file information without content
type FileInfo struct {
	Path       string
	Size       int64
	CreatedAt  time.Time
	AccessedAt time.Time
	ModifiedAt time.Time
}

// TimeLayout matches the layout of a local timestamp without fractional seconds
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime renders t in local time. Microseconds are appended only when non-zero.
func FormatTime(t time.Time) string {
	t = t.Local()
	if micro := t.Nanosecond() / 1000; micro != 0 {
		return fmt.Sprintf("%s.%06d", t.Format(TimeLayout), micro)
	}
	return t.Format(TimeLayout)
}

// Fields returns the record's columns in header order
func (r *FileRecord) Fields(algs []Algorithm) []string {
	fields := make([]string, 0, len(BaseColumns)+len(algs))
	fields = append(fields, r.Path)

	if r.StatErr != nil {
		fields = append(fields, SentinelFailed, r.SizeHuman, SentinelFailed, SentinelFailed, SentinelFailed)
	} else {
		fields = append(fields,
			fmt.Sprintf("%d", r.SizeBytes),
			r.SizeHuman,
			FormatTime(r.CreatedAt),
			FormatTime(r.AccessedAt),
			FormatTime(r.ModifiedAt),
		)
	}

	mime := r.MimeType
	if mime == "" {
		mime = MimeUnknown
	}
	fields = append(fields, mime)

	for _, alg := range algs {
		d, ok := r.Digests[alg]
		if !ok {
			fields = append(fields, SentinelFailed)
			continue
		}
		fields = append(fields, d.String())
	}
	return fields
}
