package sink

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when an artifact does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Sink is an abstraction for persisting run artifacts.
//
// Names are slash-separated relative paths (e.g. "txt/data_5_2_2.txt");
// implementations create missing parents on Create and treat repeated
// creation of the same parents as a no-op.
type Sink interface {
	// Create opens an artifact for streaming writes, truncating any previous
	// content. The caller must Close the returned writer.
	Create(ctx context.Context, name string) (io.WriteCloser, error)

	// Open opens an existing artifact for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Put writes an artifact in one shot.
	Put(ctx context.Context, name string, data []byte) error
}
