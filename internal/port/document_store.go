package port

import (
	"context"

	"github.com/google/uuid"
)

// DocumentHandle identifies one transiently stored document. Handles are
// partitioned per acquisition so concurrent requests cannot collide.
type DocumentHandle struct {
	ID   uuid.UUID
	Path string
}

// DocumentStore provides scoped, ephemeral storage for a single uploaded
// document per request. Release is idempotent and must be safe to call after
// partial failure.
type DocumentStore interface {
	Acquire(ctx context.Context, data []byte, mediaType string) (*DocumentHandle, error)
	Release(handle *DocumentHandle) error
}
