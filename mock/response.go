package mock

import (
	"bytes"
	"fmt"

	"github.com/osvik/probe"
	"github.com/osvik/probe/internal/encoding"
	"github.com/osvik/probe/specs"
)

// Response creates a response with the given status, body and header
// fields, passed as alternating name/value pairs.
func Response(status int, body []byte, fields ...string) *probe.Response {
	if len(fields)%2 != 0 {
		panic("probe/mock: header fields must be name/value pairs")
	}
	header := specs.NewHeader()
	for i := 0; i < len(fields); i += 2 {
		header.Add(fields[i], fields[i+1])
	}
	return probe.NewResponse(status, header, body)
}

// EncodedResponse compresses payload with contentEncoding and returns a
// response declaring it, ready to feed to the decoder.
func EncodedResponse(contentEncoding specs.ContentEncoding, payload []byte) (*probe.Response, error) {
	if !encoding.IsKnownEncoding(contentEncoding) {
		return nil, fmt.Errorf("probe/mock: no codec for encoding '%s'", contentEncoding)
	}

	var buf bytes.Buffer
	writer, err := encoding.NewWriter(contentEncoding, &buf)
	if err != nil {
		return nil, err
	}
	if _, err = writer.Write(payload); err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}

	return Response(200, buf.Bytes(),
		"Content-Encoding", string(contentEncoding)), nil
}
