package service

import (
	"context"
	"io"
)

// FileStorage defines the interface for persisting uploaded document files.
// This abstracts the backing store (local disk, GCS, S3) from the use cases.
type FileStorage interface {
	// Store writes the file content under the suggested path, replacing any
	// existing content there. Returns the stored path, the number of bytes
	// written and the lowercase hex SHA-256 of the content.
	Store(ctx context.Context, content io.Reader, suggestedPath string) (path string, size int64, sha256Hex string, err error)

	// Size returns the size in bytes of the stored file.
	Size(ctx context.Context, path string) (int64, error)

	// Read returns a reader over the stored file content. The caller must close it.
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the stored file. Deleting a missing path is not an error.
	Delete(ctx context.Context, path string) error

	// Close releases any resources held by the storage backend.
	Close() error
}
