package binstring

import (
	"iter"
	"unicode/utf8"
)

// Write appends p to the buffer. It always returns len(p), nil.
func (s *BinString) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// WriteByte appends c to the buffer. It always returns nil.
func (s *BinString) WriteByte(c byte) error {
	s.buf = append(s.buf, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r to the buffer.
func (s *BinString) WriteRune(r rune) (int, error) {
	n := len(s.buf)
	s.buf = utf8.AppendRune(s.buf, r)
	return len(s.buf) - n, nil
}

func (s *BinString) WriteString(str string) (int, error) {
	s.buf = append(s.buf, str...)
	return len(str), nil
}

// AppendRunes appends every rune of seq, in order.
func (s *BinString) AppendRunes(seq iter.Seq[rune]) {
	for r := range seq {
		s.buf = utf8.AppendRune(s.buf, r)
	}
}

// AppendStrings appends every string of seq, in order.
func (s *BinString) AppendStrings(seq iter.Seq[string]) {
	for str := range seq {
		s.buf = append(s.buf, str...)
	}
}

// Grow makes room for at least n more bytes without another allocation.
func (s *BinString) Grow(n int) {
	if n < 0 {
		panic("binstring.Grow: negative count")
	}
	if cap(s.buf)-len(s.buf) < n {
		buf := make([]byte, len(s.buf), len(s.buf)+n)
		copy(buf, s.buf)
		s.buf = buf
	}
}

// Reset empties s, keeping nothing of the old buffer.
func (s *BinString) Reset() {
	s.buf = nil
}

// FromRunes builds a BinString from the UTF-8 encoding of every rune of seq.
func FromRunes(seq iter.Seq[rune]) BinString {
	var s BinString
	s.AppendRunes(seq)
	return s
}

// FromStrings builds a BinString by concatenating every string of seq.
func FromStrings(seq iter.Seq[string]) BinString {
	var s BinString
	s.AppendStrings(seq)
	return s
}

// Join concatenates elems with sep between each pair.
func Join(elems []BinString, sep []byte) BinString {
	if len(elems) == 0 {
		return BinString{}
	}
	n := len(sep) * (len(elems) - 1)
	for _, e := range elems {
		n += len(e.buf)
	}
	buf := make([]byte, 0, n)
	for i, e := range elems {
		if i > 0 {
			buf = append(buf, sep...)
		}
		buf = append(buf, e.buf...)
	}
	return BinString{buf: buf}
}

// All yields each byte of s with its offset.
func (s BinString) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, c := range s.buf {
			if !yield(i, c) {
				return
			}
		}
	}
}
