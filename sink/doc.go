// Package sink provides the storage abstraction for blobgen's artifacts.
//
// Sink is the interface for writing and reading text corpora.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - Local: local filesystem with idempotent directory creation
//   - Memory: in-memory, for tests that must not touch a filesystem
//   - minio.Sink: S3-compatible object storage
//
// # Custom Implementations
//
// Implement the Sink interface to support custom storage backends:
//
//	type Sink interface {
//	    Create(ctx, name) (io.WriteCloser, error)  // Create for streaming writes
//	    Open(ctx, name) (io.ReadCloser, error)     // Open for reading
//	    Put(ctx, name, data) error                 // One-shot write
//	}
package sink
