package storage

import (
	"context"
	"io"
	"time"
)

type FileStorage interface {
	// Save writes the content to path and returns the cleaned path
	Save(ctx context.Context, path string, content io.Reader) (string, error)

	// Open retrieves a stored file
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)

	// PurgeOlderThan removes files under dir last modified before cutoff
	PurgeOlderThan(ctx context.Context, dir string, cutoff time.Time) (int, error)
}
