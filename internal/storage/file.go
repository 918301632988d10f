package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileSnapshotter keeps one JSON file per namespace in a data directory.
type FileSnapshotter struct {
	dir string
	mu  sync.Mutex
}

func NewFileSnapshotter(dir string) (*FileSnapshotter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileSnapshotter{dir: dir}, nil
}

func (f *FileSnapshotter) path(namespace string) string {
	return filepath.Join(f.dir, namespace+".json")
}

func (f *FileSnapshotter) Load(_ context.Context, namespace string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(namespace))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Save writes to a temp file and renames it over the old one, so a crash
// leaves either the previous or the new snapshot on disk.
func (f *FileSnapshotter) Save(_ context.Context, namespace string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	target := f.path(namespace)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
