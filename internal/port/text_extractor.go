package port

import "context"

// TextExtractor converts a stored document into plain text, dispatching on the
// declared media type. It does not judge content quality: empty text from a
// structurally valid document is not an error.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string, mediaType string) (string, error)
}
