package specs

import (
	"bytes"
	"iter"
	"strings"

	"github.com/osvik/probe/internal"
	"golang.org/x/net/http/httpguts"
)

var (
	directColonSpace = []byte(": ")
	directCrlf       = []byte("\r\n")
)

// NewHeader creates an empty [Header].
func NewHeader() *Header {
	return &Header{}
}

// Header is an ordered collection of HTTP header fields.
//
// Fields keep the order in which they were added and duplicate names are
// allowed; lookups compare names case-insensitively and return the first
// match. Read methods tolerate a nil receiver.
type Header struct {
	fields []headerField
}

type headerField struct {
	name  string
	value string
}

// Add appends a field to the collection, keeping receipt order.
//
// Fields with an invalid name or value are silently dropped.
func (header *Header) Add(name, value string) {
	if !httpguts.ValidHeaderFieldName(name) ||
		!httpguts.ValidHeaderFieldValue(value) {
		return
	}
	header.fields = append(header.fields, headerField{name: name, value: value})
}

// Set replaces every field named name with a single field holding value.
func (header *Header) Set(name, value string) {
	header.Del(name)
	header.Add(name, value)
}

// Del removes every field named name.
func (header *Header) Del(name string) {
	if header == nil {
		return
	}
	fields := header.fields[:0]
	for _, field := range header.fields {
		if !strings.EqualFold(field.name, name) {
			fields = append(fields, field)
		}
	}
	header.fields = fields
}

// Get returns the value of the first field matching name,
// or "" if there is none.
func (header *Header) Get(name string) string {
	value, _ := header.TryGet(name)
	return value
}

// TryGet returns the value of the first field matching name and whether
// such a field exists. Later duplicates are ignored.
func (header *Header) TryGet(name string) (string, bool) {
	if header == nil {
		return "", false
	}
	for _, field := range header.fields {
		if strings.EqualFold(field.name, name) {
			return field.value, true
		}
	}
	return "", false
}

// Has reports whether at least one field matches name.
func (header *Header) Has(name string) bool {
	_, has := header.TryGet(name)
	return has
}

// Len returns the number of fields.
func (header *Header) Len() int {
	if header == nil {
		return 0
	}
	return len(header.fields)
}

// All iterates fields as (name, value) pairs in receipt order.
func (header *Header) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if header == nil {
			return
		}
		for _, field := range header.fields {
			if !yield(field.name, field.value) {
				break
			}
		}
	}
}

// Bytes renders the fields as wire-format lines with title-cased names.
func (header *Header) Bytes() []byte {
	if header == nil || len(header.fields) == 0 {
		return make([]byte, 0)
	}
	var buf bytes.Buffer

	for _, field := range header.fields {
		buf.WriteString(internal.TitleCase(field.name))
		buf.Write(directColonSpace)
		buf.WriteString(field.value)
		buf.Write(directCrlf)
	}

	return buf.Bytes()
}
