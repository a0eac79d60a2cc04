package binstring

import (
	"strings"
)

// TrimSpace returns a copy of s without leading and trailing white space, as
// defined by Unicode. It reads the buffer as UTF-8 text without validating it;
// on invalid UTF-8 the result is unspecified.
func (s BinString) TrimSpace() BinString {
	return FromString(strings.TrimSpace(s.UnsafeString()))
}
