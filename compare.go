package binstring

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

func (s BinString) Equal(other BinString) bool {
	return bytes.Equal(s.buf, other.buf)
}

// Compare orders s and other lexicographically by raw byte value. It returns
// -1, 0 or +1.
func (s BinString) Compare(other BinString) int {
	return bytes.Compare(s.buf, other.buf)
}

// Compare is the package-level form of BinString.Compare, for slices.SortFunc.
func Compare(a, b BinString) int {
	return a.Compare(b)
}

// Hash returns a deterministic 64-bit hash of the buffer. Equal BinStrings
// always hash equally.
func (s BinString) Hash() uint64 {
	return xxhash.Sum64(s.buf)
}
