package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"renty/internal/port"
)

// MockDocumentStore is a mock implementation of port.DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Acquire(ctx context.Context, data []byte, mediaType string) (*port.DocumentHandle, error) {
	args := m.Called(ctx, data, mediaType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.DocumentHandle), args.Error(1)
}

func (m *MockDocumentStore) Release(handle *port.DocumentHandle) error {
	args := m.Called(handle)
	return args.Error(0)
}

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, path string, mediaType string) (string, error) {
	args := m.Called(ctx, path, mediaType)
	return args.String(0), args.Error(1)
}

// MockTextCompleter is a mock implementation of port.TextCompleter.
type MockTextCompleter struct {
	mock.Mock
}

func (m *MockTextCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
