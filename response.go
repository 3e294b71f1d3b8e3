package probe

import "github.com/osvik/probe/specs"

// NewResponse creates a [Response] with the given status, header and body.
// A nil header is replaced with an empty one.
func NewResponse(status int, header *specs.Header, body []byte) *Response {
	if header == nil {
		header = specs.NewHeader()
	}
	return &Response{
		Status: status,
		Header: header,
		Body:   body,
	}
}

// A Response is a fully buffered HTTP response as received from a server.
//
// Header keeps the fields in receipt order and Body holds the raw,
// possibly compressed, payload bytes. There is no streaming: the body is
// read to completion before a Response is built.
type Response struct {
	Status int
	Header *specs.Header
	Body   []byte
}
