package binstring

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/ronanh/binstring/util"
)

// Concat returns a new BinString holding the bytes of s followed by the bytes
// of other.
func (s BinString) Concat(other BinString) BinString {
	if len(s.buf)+len(other.buf) == 0 {
		return BinString{}
	}
	buf := make([]byte, 0, len(s.buf)+len(other.buf))
	buf = append(buf, s.buf...)
	return BinString{buf: append(buf, other.buf...)}
}

// Slice returns a copy of the bytes covered by r. Offsets are byte offsets:
// slicing valid UTF-8 inside a multi-byte sequence yields invalid UTF-8.
// The returned error matches ErrOutOfRange.
func (s BinString) Slice(r Range) (BinString, error) {
	start, end, err := r.Bounds(len(s.buf))
	if err != nil {
		return BinString{}, errors.WithStack(err)
	}
	return New(s.buf[start:end]), nil
}

// MustSlice is like Slice but panics on an invalid range.
func (s BinString) MustSlice(r Range) BinString {
	out, err := s.Slice(r)
	if err != nil {
		panic(err)
	}
	return out
}

func (s BinString) HasPrefix(prefix []byte) bool {
	return bytes.HasPrefix(s.buf, prefix)
}

func (s BinString) HasSuffix(suffix []byte) bool {
	return bytes.HasSuffix(s.buf, suffix)
}

// Contains reports whether needle occurs anywhere in s. An empty needle is
// always found.
func (s BinString) Contains(needle []byte) bool {
	return bytes.Contains(s.buf, needle)
}

// ContainsString is Contains for a string needle, without copying it.
func (s BinString) ContainsString(needle string) bool {
	return bytes.Contains(s.buf, util.StrToBytes(needle))
}

// Index returns the byte offset of the first occurrence of needle, or -1.
// An empty needle matches at offset 0.
func (s BinString) Index(needle []byte) int {
	return bytes.Index(s.buf, needle)
}

// LastIndex returns the byte offset of the last occurrence of needle, or -1.
// An empty needle matches at offset Len().
func (s BinString) LastIndex(needle []byte) int {
	return bytes.LastIndex(s.buf, needle)
}

// Find is Index with an explicit found flag.
func (s BinString) Find(needle []byte) (int, bool) {
	i := s.Index(needle)
	return i, i >= 0
}

// RFind is LastIndex with an explicit found flag.
func (s BinString) RFind(needle []byte) (int, bool) {
	i := s.LastIndex(needle)
	return i, i >= 0
}

// Replace returns a copy of s with every byte equal to old set to new.
func (s BinString) Replace(old, new byte) BinString {
	out := s.Clone()
	for i, c := range out.buf {
		if c == old {
			out.buf[i] = new
		}
	}
	return out
}

// EqualString reports whether the buffer equals str byte for byte.
func (s BinString) EqualString(str string) bool {
	return bytes.Equal(s.buf, util.StrToBytes(str))
}
