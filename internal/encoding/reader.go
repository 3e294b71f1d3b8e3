package encoding

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/osvik/probe/specs"
)

// NewReader wraps reader with the decompressor matching contentEncoding.
// Deflate means zlib-wrapped deflate, not a raw deflate stream.
func NewReader(contentEncoding specs.ContentEncoding, reader io.Reader) (io.ReadCloser, error) {
	switch contentEncoding {
	case specs.ContentEncodingGzip:
		return gzip.NewReader(reader)
	case specs.ContentEncodingDeflate:
		return zlib.NewReader(reader)
	case specs.ContentEncodingBrotli:
		return io.NopCloser(brotli.NewReader(reader)), nil
	}
	return nil, fmt.Errorf("unknown content encoding %s", contentEncoding)
}
