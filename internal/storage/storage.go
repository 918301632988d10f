// Package storage persists serialized store state under a namespace key.
package storage

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned by Load when nothing was saved under the namespace.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshotter loads and saves an opaque state blob keyed by namespace.
type Snapshotter interface {
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, data []byte) error
}
