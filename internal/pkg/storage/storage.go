package storage

import (
	"context"
	"io"
)

// FileStorage archives rendered payslip documents. Serving never reads the
// archive; every download is re-rendered from the database.
type FileStorage interface {
	// Upload stores a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// GetURL returns the public URL for a stored path
	GetURL(ctx context.Context, path string) (string, error)

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)
}
