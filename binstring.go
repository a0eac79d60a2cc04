// Package binstring provides BinString, a byte buffer that may hold arbitrary
// binary data and can be viewed either as bytes or as text.
//
// Byte-level operations are defined for every input. Text-level operations
// (UnsafeString, IntoString, TrimSpace) reinterpret the buffer as UTF-8 text
// without validating it; their results are only meaningful when the buffer
// holds valid UTF-8. Nothing in this package ever checks.
package binstring

import (
	"github.com/ronanh/binstring/util"
)

// BinString owns a contiguous byte buffer. The zero value is empty and ready
// to use.
//
// Assigning a BinString shares its buffer, like any slice-backed value; use
// Clone for an independent copy.
type BinString struct {
	buf []byte
}

// New copies v into a new BinString. It accepts any string or byte slice type.
func New[T ~string | ~[]byte](v T) BinString {
	if len(v) == 0 {
		return BinString{}
	}
	return BinString{buf: append(make([]byte, 0, len(v)), v...)}
}

// FromString copies s into a new BinString.
func FromString(s string) BinString {
	return New(s)
}

// FromBytes wraps b without copying or validating it. The BinString takes
// ownership of b: the caller must not modify b afterwards.
func FromBytes(b []byte) BinString {
	return BinString{buf: b}
}

// CopyBytes copies b into a new BinString.
func CopyBytes(b []byte) BinString {
	return New(b)
}

// Bytes returns the underlying buffer. It is not a copy.
func (s BinString) Bytes() []byte {
	return s.buf
}

// UnsafeString returns the buffer reinterpreted as a string, without copying
// or validating it. The string aliases the buffer: s must not be mutated while
// the result is in use, and text operations on the result are only meaningful
// if the buffer is valid UTF-8.
func (s BinString) UnsafeString() string {
	return util.BytesToStr(s.buf)
}

// IntoString consumes s and returns its buffer as a string without copying or
// validating it. s is left empty.
func (s *BinString) IntoString() string {
	str := util.BytesToStr(s.buf)
	s.buf = nil
	return str
}

// String returns a copy of the buffer as a string.
func (s BinString) String() string {
	return string(s.buf)
}

// Len returns the length of the buffer in bytes.
func (s BinString) Len() int {
	return len(s.buf)
}

func (s BinString) IsEmpty() bool {
	return len(s.buf) == 0
}

// Clone returns a BinString with its own copy of the buffer.
func (s BinString) Clone() BinString {
	return New(s.buf)
}
