// Package sniff classifies files by their leading bytes
package sniff

import (
	"mime"

	"github.com/IvanShishkin/dirlist/internal/filesystem"
	"github.com/IvanShishkin/dirlist/pkg/models"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// HeadSize is how many leading bytes are inspected
const HeadSize = 3072

const octetStream = "application/octet-stream"

// Sniffer detects MIME types from file content. The extension is never consulted.
type Sniffer struct {
	logger *zap.Logger
}

// NewSniffer creates a new content sniffer
func NewSniffer(logger *zap.Logger) *Sniffer {
	return &Sniffer{logger: logger}
}

// Sniff returns the media type of the file at path without parameters
// ("image/png", "text/plain"), or models.MimeUnknown.
func (s *Sniffer) Sniff(path string) string {
	head, err := filesystem.ReadHead(path, HeadSize)
	if err != nil {
		s.logger.Warn("Type detection failed",
			zap.String("path", path),
			zap.Error(models.NewError(models.KindSniffFailed, "sniff", path, err)))
		return models.MimeUnknown
	}
	return Detect(head)
}

// Detect classifies an in-memory head
func Detect(head []byte) string {
	if len(head) == 0 {
		return models.MimeUnknown
	}

	mt := mimetype.Detect(head)
	if mt == nil {
		return models.MimeUnknown
	}

	mediaType, _, err := mime.ParseMediaType(mt.String())
	if err != nil {
		mediaType = mt.String()
	}
	if mediaType == octetStream {
		return models.MimeUnknown
	}
	return mediaType
}
