package model

import "context"

// Cache resolves model names to files on disk.
type Cache interface {
	// Ensure returns the model file path, downloading it if it is missing.
	Ensure(ctx context.Context, name string) (string, error)
}
