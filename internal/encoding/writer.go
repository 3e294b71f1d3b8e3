package encoding

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/osvik/probe/specs"
)

// NewWriter wraps writer with the compressor matching contentEncoding.
func NewWriter(contentEncoding specs.ContentEncoding, writer io.Writer) (io.WriteCloser, error) {
	switch contentEncoding {
	case specs.ContentEncodingGzip:
		return gzip.NewWriter(writer), nil
	case specs.ContentEncodingDeflate:
		return zlib.NewWriter(writer), nil
	case specs.ContentEncodingBrotli:
		return brotli.NewWriter(writer), nil
	}
	return nil, fmt.Errorf("unknown content encoding %s", contentEncoding)
}
