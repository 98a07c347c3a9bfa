package sink

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// Memory is an in-memory Sink implementation for testing.
// It stores artifacts in memory without any filesystem dependency.
// Thread-safe for concurrent reads and writes.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory creates a new in-memory sink.
func NewMemory() *Memory {
	return &Memory{
		blobs: make(map[string][]byte),
	}
}

// Create returns a writer that commits the artifact on Close.
func (m *Memory) Create(_ context.Context, name string) (io.WriteCloser, error) {
	return &memoryWriter{sink: m, name: name}, nil
}

// Open opens an artifact for reading.
func (m *Memory) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent external mutation.
	copied := make([]byte, len(data))
	copy(copied, data)

	return io.NopCloser(bytes.NewReader(copied)), nil
}

// Put writes an artifact atomically.
func (m *Memory) Put(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	m.blobs[name] = copied
	return nil
}

// Bytes returns a copy of a stored artifact, or nil if absent.
func (m *Memory) Bytes(name string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied
}

type memoryWriter struct {
	sink *Memory
	name string
	buf  bytes.Buffer
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *memoryWriter) Close() error {
	return w.sink.Put(context.Background(), w.name, w.buf.Bytes())
}
