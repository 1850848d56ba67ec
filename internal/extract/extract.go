package extract

import (
	"context"
	"fmt"

	"renty/internal/domain"
)

// extractFunc converts one on-disk document into plain text.
type extractFunc func(path string) (string, error)

// dispatch maps declared media types to their extraction function. Adding a
// format means adding one entry and one pure function.
var dispatch = map[string]extractFunc{
	domain.ContentTypePDF:  extractPDF,
	domain.ContentTypeDOC:  extractDOC,
	domain.ContentTypeDOCX: extractDOCX,
}

// Extractor implements port.TextExtractor over the local dispatch table.
type Extractor struct{}

// NewExtractor creates a format extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText extracts plain text from the document at path. The declared
// media type picks the parser; undeclared types are rejected without touching
// the file. Empty or whitespace-only output from a parseable document is
// returned as-is: content quality is judged downstream, not here.
func (e *Extractor) ExtractText(ctx context.Context, path string, mediaType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fn, ok := dispatch[mediaType]
	if !ok {
		return "", fmt.Errorf("no extractor for media type %s", mediaType)
	}
	return fn(path)
}
