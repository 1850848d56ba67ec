package verify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"renty/internal/domain"
	"renty/internal/port"
)

// Request carries the inputs for one lease verification. The document bytes
// are owned by the pipeline for the duration of the call and are never
// persisted beyond it.
type Request struct {
	DocumentBytes []byte
	MediaType     string
	OwnerName     string
	OccupantName  string
}

// Pipeline sequences lease verification: acquire document, extract text,
// build prompt, invoke the understanding service, parse, decide. It holds no
// cross-request state; each call gets its own document handle and network call.
type Pipeline struct {
	store     port.DocumentStore
	extractor port.TextExtractor
	completer port.TextCompleter
	engine    *Engine
}

// NewPipeline creates a verification pipeline.
func NewPipeline(
	store port.DocumentStore,
	extractor port.TextExtractor,
	completer port.TextCompleter,
	engine *Engine,
) *Pipeline {
	return &Pipeline{
		store:     store,
		extractor: extractor,
		completer: completer,
		engine:    engine,
	}
}

// Verify runs the full pipeline for one request. The transient document copy
// is released on every exit path, including cancellation. Failures are
// reported as the typed errors in this package; no stage is retried.
func (p *Pipeline) Verify(ctx context.Context, req Request) (*domain.LeaseVerdict, error) {
	if strings.TrimSpace(req.OwnerName) == "" || strings.TrimSpace(req.OccupantName) == "" {
		return nil, ErrInvalidRequest
	}
	if _, ok := domain.AllowedLeaseMediaTypes[req.MediaType]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, req.MediaType)
	}

	handle, err := p.store.Acquire(ctx, req.DocumentBytes, req.MediaType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer func() {
		if err := p.store.Release(handle); err != nil {
			log.Printf("verify.Pipeline: releasing document %s: %v", handle.ID, err)
		}
	}()

	text, err := p.extractor.ExtractText(ctx, handle.Path, req.MediaType)
	if err != nil {
		return nil, &ExtractionError{MediaType: req.MediaType, Err: err}
	}

	prompt := BuildLeasePrompt(text, req.OwnerName, req.OccupantName)

	raw, err := p.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	assessment, err := ParseAssessment(raw)
	if err != nil {
		return nil, err
	}

	return p.engine.Decide(assessment), nil
}
