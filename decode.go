package probe

import (
	"bytes"
	"io"
	"strconv"

	"github.com/osvik/probe/internal/encoding"
	"github.com/osvik/probe/specs"
)

// brotliChunkSize bounds single-chunk brotli decoding, see uncompressBrotli.
const brotliChunkSize = 4096

// ContentEncoding reports the encoding declared by the response.
//
// The first Content-Encoding field wins when duplicates are present,
// matching the field name case-insensitively. The value itself is matched
// case-sensitively: unrecognized values fail
// with [specs.UnsupportedContentEncodingError].
//
// An absent field yields [specs.ContentEncodingUndefined] without error.
func (resp *Response) ContentEncoding() (specs.ContentEncoding, error) {
	value, has := resp.Header.TryGet("Content-Encoding")
	if !has {
		return specs.ContentEncodingUndefined, nil
	}
	return specs.ParseContentEncoding(value)
}

// UncompressBody returns the response body with its declared content
// encoding reversed.
//
// An undefined or identity encoding returns a fresh copy of the body
// unchanged. Compressed bodies are decoded in full, except brotli which
// keeps the single-chunk policy of uncompressBrotli. Codec failures are
// reported as [specs.UncompressError] with the algorithm name; the
// response itself is never modified.
func (resp *Response) UncompressBody() ([]byte, error) {
	enc, err := resp.ContentEncoding()
	if err != nil {
		return nil, err
	}
	switch enc {
	case specs.ContentEncodingGzip:
		return uncompressGzip(resp.Body)
	case specs.ContentEncodingDeflate:
		return uncompressZlib(resp.Body)
	case specs.ContentEncodingBrotli:
		return uncompressBrotli(resp.Body)
	}
	return bytes.Clone(resp.Body), nil
}

// ReplaceWithDecodedBody decodes the body in place and rewrites the
// headers to describe the stored bytes: Content-Encoding and
// Transfer-Encoding are removed, Content-Length is set to the decoded
// size. On error the response is left untouched.
func (resp *Response) ReplaceWithDecodedBody() error {
	body, err := resp.UncompressBody()
	if err != nil {
		return err
	}
	resp.Body = body
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Transfer-Encoding")
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
	return nil
}

func uncompressGzip(data []byte) ([]byte, error) {
	reader, err := encoding.NewReader(specs.ContentEncodingGzip, bytes.NewReader(data))
	if err != nil {
		return nil, &specs.UncompressError{Algorithm: "gzip"}
	}
	defer reader.Close()

	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, &specs.UncompressError{Algorithm: "gzip"}
	}
	return buf, nil
}

func uncompressZlib(data []byte) ([]byte, error) {
	reader, err := encoding.NewReader(specs.ContentEncodingDeflate, bytes.NewReader(data))
	if err != nil {
		return nil, &specs.UncompressError{Algorithm: "zlib"}
	}
	defer reader.Close()

	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, &specs.UncompressError{Algorithm: "zlib"}
	}
	return buf, nil
}

// uncompressBrotli reads a single chunk of at most brotliChunkSize bytes
// from the brotli stream instead of looping to end of stream. Payloads
// whose decoded size exceeds the chunk are truncated; changing this to a
// full read is a behavior change, not a refactor.
func uncompressBrotli(data []byte) ([]byte, error) {
	reader, err := encoding.NewReader(specs.ContentEncodingBrotli, bytes.NewReader(data))
	if err != nil {
		return nil, &specs.UncompressError{Algorithm: "brotli"}
	}
	defer reader.Close()

	buf := make([]byte, brotliChunkSize)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return nil, &specs.UncompressError{Algorithm: "brotli"}
	}
	return buf[:n], nil
}
