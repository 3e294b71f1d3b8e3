package encoding

import "github.com/osvik/probe/specs"

// IsKnownEncoding reports whether contentEncoding has a codec
// behind [NewReader] and [NewWriter].
func IsKnownEncoding(contentEncoding specs.ContentEncoding) bool {
	switch contentEncoding {
	case specs.ContentEncodingGzip, specs.ContentEncodingDeflate,
		specs.ContentEncodingBrotli:
		return true
	}
	return false
}
