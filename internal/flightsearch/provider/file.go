package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileProvider answers every search with a recorded search.php body read
// from disk.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (f *FileProvider) Name() string {
	return "File"
}

func (f *FileProvider) Search(ctx context.Context, _ SearchRequest) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(f.path))
	if err != nil {
		return nil, fmt.Errorf("file provider read: %w", err)
	}

	return Decode(data)
}
