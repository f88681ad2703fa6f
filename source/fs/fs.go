// Package fs provides an operating system backed source.FileSystem.
// It is the default used by the parser's entry points.
package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/yomogi/masume/source"
)

// FileSystem reads files and directories from the OS.
type FileSystem struct{}

// Ensure FileSystem implements the source.FileSystem interface.
var _ source.FileSystem = (*FileSystem)(nil)

// New creates an OS-backed FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// ReadFile implements the source.FileSystem interface.
func (f *FileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return data, nil
}

// ReadDir implements the source.FileSystem interface.
func (f *FileSystem) ReadDir(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
