package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies inventory failures
type ErrorKind int

const (
	// KindScanFatal aborts the scan before a report exists
	KindScanFatal ErrorKind = iota
	// KindDigestFailed degrades one digest field of one row
	KindDigestFailed
	// KindSniffFailed degrades the type field of one row
	KindSniffFailed
	// KindOutputWrite means the report could not be written; it is still in memory
	KindOutputWrite
)

func (k ErrorKind) String() string {
	switch k {
	case KindScanFatal:
		return "scan fatal"
	case KindDigestFailed:
		return "digest failed"
	case KindSniffFailed:
		return "sniff failed"
	case KindOutputWrite:
		return "output write"
	default:
		return "unknown"
	}
}

// Error is an inventory error tagged with its kind
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

// NewError creates a tagged error
func NewError(kind ErrorKind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether any error in err's chain is an *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
