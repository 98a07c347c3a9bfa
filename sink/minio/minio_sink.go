package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"sync/atomic"

	"github.com/minio/minio-go/v7"

	"github.com/squarcia/blobgen/sink"
)

// Sink implements sink.Sink on top of MinIO and S3-compatible storage.
type Sink struct {
	client *minio.Client
	bucket string
	prefix string
}

// New creates a MinIO-backed sink.
// bucket is the bucket name; rootPrefix is prepended to all keys
// (e.g. "benchmarks/").
func New(client *minio.Client, bucket, rootPrefix string) *Sink {
	return &Sink{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Sink) key(name string) string {
	return path.Join(s.prefix, name)
}

// Create creates an artifact for streaming writes. The upload runs in the
// background; Close blocks until it finishes and reports its error.
func (s *Sink) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	key := s.key(name)
	pr, pw := io.Pipe()

	w := &pipeWriter{
		pw:   pw,
		done: make(chan error, 1),
	}

	go func() {
		_, err := s.client.PutObject(ctx, s.bucket, key, pr, -1, minio.PutObjectOptions{})
		_ = pr.CloseWithError(err)
		w.done <- err
	}()

	return w, nil
}

// Open opens an existing artifact for reading.
func (s *Sink) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)

	// Stat first to surface missing objects eagerly; GetObject defers the
	// error to the first read otherwise.
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, sink.ErrNotFound
		}
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Put writes an artifact atomically.
func (s *Sink) Put(ctx context.Context, name string, data []byte) error {
	key := s.key(name)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	return err
}

type pipeWriter struct {
	pw     *io.PipeWriter
	done   chan error
	closed atomic.Bool
}

func (w *pipeWriter) Write(p []byte) (int, error) {
	return w.pw.Write(p)
}

func (w *pipeWriter) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return errors.New("already closed")
	}
	if err := w.pw.Close(); err != nil {
		return err
	}
	return <-w.done
}
