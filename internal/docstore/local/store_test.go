package local_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renty/internal/docstore/local"
	"renty/internal/domain"
)

func TestAcquire_WritesDocument(t *testing.T) {
	dir := t.TempDir()
	store := local.NewStore(dir)

	data := []byte("%PDF-1.4 lease body")
	handle, err := store.Acquire(context.Background(), data, domain.ContentTypePDF)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(handle.Path, dir))
	assert.True(t, strings.HasSuffix(handle.Path, ".pdf"))

	got, err := os.ReadFile(handle.Path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestAcquire_UniqueHandles(t *testing.T) {
	store := local.NewStore(t.TempDir())

	first, err := store.Acquire(context.Background(), []byte("a"), domain.ContentTypePDF)
	require.NoError(t, err)
	second, err := store.Acquire(context.Background(), []byte("b"), domain.ContentTypePDF)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Path, second.Path)
}

func TestAcquire_ExtensionFollowsMediaType(t *testing.T) {
	store := local.NewStore(t.TempDir())

	cases := map[string]string{
		domain.ContentTypePDF:  ".pdf",
		domain.ContentTypeDOC:  ".doc",
		domain.ContentTypeDOCX: ".docx",
	}
	for mediaType, ext := range cases {
		handle, err := store.Acquire(context.Background(), []byte("x"), mediaType)
		require.NoError(t, err)
		assert.Equal(t, ext, filepath.Ext(handle.Path))
	}
}

func TestAcquire_CanceledContext(t *testing.T) {
	store := local.NewStore(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Acquire(ctx, []byte("x"), domain.ContentTypePDF)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRelease_RemovesDocument(t *testing.T) {
	store := local.NewStore(t.TempDir())

	handle, err := store.Acquire(context.Background(), []byte("x"), domain.ContentTypePDF)
	require.NoError(t, err)

	require.NoError(t, store.Release(handle))

	_, err = os.Stat(handle.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestRelease_Idempotent(t *testing.T) {
	store := local.NewStore(t.TempDir())

	handle, err := store.Acquire(context.Background(), []byte("x"), domain.ContentTypePDF)
	require.NoError(t, err)

	require.NoError(t, store.Release(handle))
	assert.NoError(t, store.Release(handle))
	assert.NoError(t, store.Release(nil))
}

func TestNewStore_DefaultDir(t *testing.T) {
	store := local.NewStore("")

	handle, err := store.Acquire(context.Background(), []byte("x"), domain.ContentTypePDF)
	require.NoError(t, err)
	defer func() { _ = store.Release(handle) }()

	assert.Contains(t, handle.Path, "renty-leases")
}
