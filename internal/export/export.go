// Package export turns a generated artifact's Markdown content into a
// downloadable byte stream. Markdown export is the identity transform; docx
// export translates the Markdown-ish structure into a minimal
// WordprocessingML package.
package export

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects the download format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatDocx     Format = "docx"
)

const (
	mimeMarkdown = "text/markdown; charset=utf-8"
	mimeDocx     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrEmptyContent indicates there is nothing to export.
	ErrEmptyContent = errors.New("empty content")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)

// ParseFormat validates a raw format string.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "docx", "document":
		return FormatDocx, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrInvalidInput, raw)
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	if f == FormatDocx {
		return ".docx"
	}
	return ".md"
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatDocx {
		return mimeDocx
	}
	return mimeMarkdown
}

// Export renders content in the given format. No state is retained after
// the bytes are handed back.
func Export(content string, format Format) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	switch format {
	case FormatMarkdown:
		return []byte(content), nil
	case FormatDocx:
		return renderDocx(content)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidInput, format)
	}
}

// FileName builds the download name for an artifact kind, preferring the
// requested name when one is given. Path separators and traversal patterns
// are rejected.
func FileName(kind, requested string, format Format) (string, error) {
	name := strings.TrimSpace(requested)
	if name == "" {
		name = strings.TrimSpace(kind)
	}
	if name == "" {
		name = "artifact"
	}
	if strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: invalid file name", ErrInvalidInput)
	}
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if !strings.HasSuffix(strings.ToLower(name), format.Extension()) {
		name += format.Extension()
	}
	return name, nil
}
