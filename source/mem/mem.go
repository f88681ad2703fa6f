// Package mem provides an in-memory, read-only source.FileSystem.
// It is mainly useful for tests and for callers that ship map data
// embedded in the binary.
package mem

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yomogi/masume/source"
)

// FileSystem serves file contents from a path-keyed map.
type FileSystem struct {
	files map[string][]byte
}

// Ensure FileSystem implements the source.FileSystem interface.
var _ source.FileSystem = (*FileSystem)(nil)

// New creates a FileSystem from a map of path to contents. Paths are
// cleaned, so lookups resolve the same way the parser builds them.
//
// Example:
//
//	fsys := mem.New(map[string][]byte{
//	    "/maps/level1.tmj":  mapData,
//	    "/maps/tiles.tsj":   tilesetData,
//	})
func New(files map[string][]byte) *FileSystem {
	cleaned := make(map[string][]byte, len(files))
	for path, data := range files {
		cleaned[filepath.Clean(path)] = data
	}
	return &FileSystem{files: cleaned}
}

// ReadFile implements the source.FileSystem interface. A copy of the
// stored data is returned to keep the FileSystem immutable.
func (f *FileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := f.files[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("failed to read file %q: %w", path, fs.ErrNotExist)
	}
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// ReadDir implements the source.FileSystem interface. It lists the
// direct children of dir, sorted by name.
func (f *FileSystem) ReadDir(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := filepath.Clean(dir) + string(filepath.Separator)
	var names []string
	for path := range f.files {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := path[len(prefix):]
		if strings.ContainsRune(rest, filepath.Separator) {
			continue
		}
		names = append(names, rest)
	}
	if names == nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, fs.ErrNotExist)
	}
	sort.Strings(names)
	return names, nil
}
