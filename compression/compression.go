// Package compression provides the pluggable decompressor registry
// used for base64-encoded tile layer data.
//
// gzip and zlib support is built in. zstd is optional; importing the
// compression/zstd subpackage registers it:
//
//	import _ "github.com/yomogi/masume/compression/zstd"
package compression

import (
	"compress/gzip"
	"compress/zlib"
	"io"
	"sync"
)

// DecoderFunc wraps a compressed stream with a decompressing reader.
type DecoderFunc func(io.Reader) (io.ReadCloser, error)

var (
	mu       sync.RWMutex
	decoders = map[string]DecoderFunc{}
)

// Algorithm names Tiled may declare on tile data. An algorithm can be
// recognized without being available (zstd before registration).
var known = map[string]bool{
	"gzip": true,
	"zlib": true,
	"zstd": true,
}

func init() {
	Register("gzip", func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	})
	Register("zlib", func(r io.Reader) (io.ReadCloser, error) {
		return zlib.NewReader(r)
	})
}

// Register makes a decompressor available under the given algorithm
// name, replacing any previous registration. It is typically called
// from an init function, like image format registration in the
// standard library.
func Register(name string, fn DecoderFunc) {
	mu.Lock()
	defer mu.Unlock()
	decoders[name] = fn
	known[name] = true
}

// Decoder returns the decompressor registered for name.
func Decoder(name string) (DecoderFunc, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := decoders[name]
	return fn, ok
}

// Known reports whether name is a recognized algorithm, registered or
// not. The parser uses this to tell "missing optional capability"
// apart from "unknown compression".
func Known(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return known[name]
}
