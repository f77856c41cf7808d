// Package extract pulls plain text out of uploaded contract files.
package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// SupportedExtensions lists the accepted upload extensions.
var SupportedExtensions = []string{".pdf", ".txt"}

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Supported reports whether ext (with leading dot, any case) can be extracted.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, s := range SupportedExtensions {
		if s == ext {
			return true
		}
	}
	return false
}

// ExtractBytes extracts text from content based on the given extension.
// ext should include the leading dot (e.g. ".pdf").
func (e *Extractor) ExtractBytes(content []byte, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractPDF(content)
	case ".txt":
		return extractPlain(content), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// extractPlain replaces invalid UTF-8 sequences with the replacement character.
func extractPlain(content []byte) string {
	if !utf8.Valid(content) {
		return strings.ToValidUTF8(string(content), "\uFFFD")
	}
	return string(content)
}
