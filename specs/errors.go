package specs

import "fmt"

// UnsupportedContentEncodingError reports a Content-Encoding header
// value outside the recognized set.
//
// Value keeps the raw header value for diagnostics.
type UnsupportedContentEncodingError struct {
	Value string
}

func (e *UnsupportedContentEncodingError) Error() string {
	return fmt.Sprintf("probe/decode: unsupported content encoding '%s'", e.Value)
}

// UncompressError reports that a recognized encoding could not be
// reversed because the codec failed on the body bytes.
//
// Algorithm identifies the codec that failed: "brotli", "gzip" or "zlib".
// The underlying codec error is intentionally not kept.
type UncompressError struct {
	Algorithm string
}

func (e *UncompressError) Error() string {
	return fmt.Sprintf("probe/decode: could not uncompress response with %s encoding", e.Algorithm)
}
