package sink

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Local implements Sink using the local file system.
type Local struct {
	root string
}

// NewLocal creates a Local sink rooted at the given directory.
// The root itself is created lazily on the first Create or Put.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Root returns the sink's root directory.
func (s *Local) Root() string { return s.root }

func (s *Local) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Create opens an artifact for writing, creating parent directories as
// needed. MkdirAll is idempotent, so repeated runs into the same tree are
// safe.
func (s *Local) Create(_ context.Context, name string) (io.WriteCloser, error) {
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// Open opens an artifact for reading.
func (s *Local) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// Put writes an artifact in one shot.
func (s *Local) Put(ctx context.Context, name string, data []byte) error {
	w, err := s.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
