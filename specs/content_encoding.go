package specs

// ContentEncoding represents a content encoding declared
// by an HTTP response for its body.
//
// The recognized values are based on the IANA HTTP Content-Encoding
// registry, limited to the encodings the decoder can reverse.
//
// Reference: https://www.iana.org/assignments/http-parameters/http-parameters.xhtml
type ContentEncoding string

const (
	// ContentEncodingUndefined means the response declared no encoding.
	ContentEncodingUndefined ContentEncoding = ""

	ContentEncodingBrotli   ContentEncoding = "br"
	ContentEncodingGzip     ContentEncoding = "gzip"
	ContentEncodingDeflate  ContentEncoding = "deflate"
	ContentEncodingIdentity ContentEncoding = "identity"
)

// AcceptEncoding lists every compressed encoding the decoder understands,
// suitable as an Accept-Encoding request header value.
const AcceptEncoding = string(ContentEncodingGzip) + ", " +
	string(ContentEncodingDeflate) + ", " + string(ContentEncodingBrotli)

// ParseContentEncoding maps a Content-Encoding header value to its
// [ContentEncoding]. Matching is case-sensitive, per the registry:
// "BR" is not "br".
//
// Values outside the recognized set fail
// with [UnsupportedContentEncodingError] carrying the raw value.
func ParseContentEncoding(value string) (ContentEncoding, error) {
	switch enc := ContentEncoding(value); enc {
	case ContentEncodingBrotli, ContentEncodingGzip,
		ContentEncodingDeflate, ContentEncodingIdentity:
		return enc, nil
	}
	return ContentEncodingUndefined, &UnsupportedContentEncodingError{Value: value}
}
