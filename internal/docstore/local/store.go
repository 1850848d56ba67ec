package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"renty/internal/domain"
	"renty/internal/port"
)

// Store keeps uploaded documents in a process-local temp directory for the
// lifetime of a single verification call. It never touches the network or a
// database.
type Store struct {
	dir string
}

// NewStore creates a temp-file-backed DocumentStore. An empty dir falls back
// to the system temp directory.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "renty-leases")
	}
	return &Store{dir: dir}
}

// Acquire writes the document to a uniquely named file. The handle ID doubles
// as the file name, so concurrent requests cannot collide.
func (s *Store) Acquire(ctx context.Context, data []byte, mediaType string) (*port.DocumentHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating document dir: %w", err)
	}

	id := uuid.New()
	ext := "bin"
	if mt, ok := domain.AllowedLeaseMediaTypes[mediaType]; ok {
		ext = domain.LeaseMediaTypeExtensions[mt]
	}
	path := filepath.Join(s.dir, id.String()+"."+ext)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}
	return &port.DocumentHandle{ID: id, Path: path}, nil
}

// Release deletes the document file. Releasing an already-released handle is
// a no-op.
func (s *Store) Release(handle *port.DocumentHandle) error {
	if handle == nil || handle.Path == "" {
		return nil
	}
	if err := os.Remove(handle.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing document %s: %w", handle.ID, err)
	}
	return nil
}
