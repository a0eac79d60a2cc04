package binstring

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is matched by every error returned for an invalid byte range.
var ErrOutOfRange = errors.New("byte range out of bounds")

// RangeError describes an invalid half-open byte range [Start, End) against a
// buffer of Len bytes.
type RangeError struct {
	Start, End int
	Len        int
}

func (e *RangeError) Error() string {
	switch {
	case e.Start < 0:
		return fmt.Sprintf("range start index %d is negative", e.Start)
	case e.Start > e.End:
		return fmt.Sprintf("range start index %d is greater than end index %d", e.Start, e.End)
	default:
		return fmt.Sprintf("range end index %d out of range for length %d", e.End, e.Len)
	}
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Range is a byte range. The zero value selects nothing: it is the empty
// range [0, 0).
type Range struct {
	Start int
	End   int
	// Inclusive makes End part of the range.
	Inclusive bool
	// Unbounded ignores End; the range runs to the end of the buffer.
	Unbounded bool
}

// Span is the half-open range [start, end).
func Span(start, end int) Range { return Range{Start: start, End: end} }

// SpanInclusive is the closed range [start, end].
func SpanInclusive(start, end int) Range { return Range{Start: start, End: end, Inclusive: true} }

// From is the range from start to the end of the buffer.
func From(start int) Range { return Range{Start: start, Unbounded: true} }

// To is the range [0, end).
func To(end int) Range { return Range{End: end} }

// ToInclusive is the range [0, end].
func ToInclusive(end int) Range { return Range{End: end, Inclusive: true} }

// Full covers the whole buffer.
func Full() Range { return Range{Unbounded: true} }

// Bounds resolves r against a buffer of n bytes and returns the equivalent
// half-open interval.
func (r Range) Bounds(n int) (start, end int, err error) {
	start, end = r.Start, r.End
	switch {
	case r.Unbounded:
		end = n
	case r.Inclusive:
		if end == math.MaxInt {
			return 0, 0, &RangeError{Start: start, End: end, Len: n}
		}
		end++
	}
	if start < 0 || start > end || end > n {
		return 0, 0, &RangeError{Start: start, End: end, Len: n}
	}
	return start, end, nil
}

func (r Range) String() string {
	switch {
	case r.Unbounded:
		return fmt.Sprintf("%d..", r.Start)
	case r.Inclusive:
		return fmt.Sprintf("%d..=%d", r.Start, r.End)
	default:
		return fmt.Sprintf("%d..%d", r.Start, r.End)
	}
}
