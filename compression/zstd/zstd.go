// Package zstd registers zstd tile data decompression, backed by
// github.com/klauspost/compress. Import it for side effects:
//
//	import _ "github.com/yomogi/masume/compression/zstd"
package zstd

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/yomogi/masume/compression"
)

func init() {
	compression.Register("zstd", newReader)
}

func newReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}
