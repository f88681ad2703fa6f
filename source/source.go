// Package source provides the file access capability injected into the
// parser. A FileSystem is responsible only for I/O; all path
// resolution and parsing happens in the core.
package source

import "context"

// FileSystem supplies the bytes of referenced files and, for worlds
// using pattern-based map discovery, directory listings. Paths are
// passed exactly as the core resolved them.
//
// Implementations may be backed by the OS (fs.New), by memory
// (mem.New), or by anything else - archives, bundles, remote storage.
// A FileSystem must be safe for concurrent use if documents are
// decoded concurrently.
type FileSystem interface {
	// ReadFile returns the contents of the file at path. Failures,
	// including not-found, are reported as errors and surface to the
	// caller wrapped in the parser's ReadError.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// ReadDir returns the names (not full paths) of the entries in
	// dir. Used only for world files with pattern-based discovery;
	// entries are never opened.
	ReadDir(ctx context.Context, dir string) ([]string, error)
}
