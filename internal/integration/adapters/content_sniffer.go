// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/expense-report/backend/internal/application/adapter"
)

// Fallback type for content the detector cannot classify. Receipts are
// almost always camera images, so an unknown blob is served as PNG rather
// than rejected.
const (
	fallbackMIME      = "image/png"
	fallbackExtension = "png"
)

// contentSniffer implements the adapter.ContentSniffer interface using
// magic-byte detection.
type contentSniffer struct{}

// NewContentSniffer creates a new content sniffer instance.
func NewContentSniffer() adapter.ContentSniffer {
	return &contentSniffer{}
}

// Sniff inspects the content's magic bytes. The client-supplied filename is
// never consulted.
func (s *contentSniffer) Sniff(content []byte) adapter.SniffedType {
	detected := mimetype.Detect(content)
	if detected.Is("application/octet-stream") {
		return adapter.SniffedType{MIME: fallbackMIME, Extension: fallbackExtension}
	}

	ext := strings.TrimPrefix(detected.Extension(), ".")
	if ext == "" {
		ext = fallbackExtension
	}

	return adapter.SniffedType{
		MIME:      detected.String(),
		Extension: ext,
	}
}
