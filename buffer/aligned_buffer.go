// Package buffer provides the fixed-size element containers the ring and
// ntt packages pass data through: a single aligned sequence of elements
// ([AlignedBuffer]) and an equal-length collection of them addressable as
// a matrix ([MultiBuffer]).
package buffer

import (
	"golang.org/x/exp/constraints"

	"github.com/slaperche-scality/nttec/nttecerr"
)

// AlignedBuffer is a fixed-size, heap-allocated sequence of elements.
// Go's allocator already aligns slice backing arrays to the element's
// natural alignment, which for the element widths this module targets
// (up to 128 bits) is sufficient for the SIMD loads/stores the NTT inner
// loops want; AlignedBuffer exists to pin down size-invariance and
// ownership rather than to hand-roll alignment control.
//
// The zero value is not usable; construct with [New], [NewFilled], or
// [NewFromSlice].
type AlignedBuffer[T any] struct {
	data []T
}

// New allocates a buffer of n zero-valued elements.
func New[T any](n int) *AlignedBuffer[T] {
	return &AlignedBuffer[T]{data: make([]T, n)}
}

// NewFilled allocates a buffer of n elements, each set to v.
func NewFilled[T any](n int, v T) *AlignedBuffer[T] {
	b := New[T](n)
	for i := range b.data {
		b.data[i] = v
	}
	return b
}

// NewFromSlice copies vals into a new buffer; the source slice is not
// retained.
func NewFromSlice[T any](vals []T) *AlignedBuffer[T] {
	data := make([]T, len(vals))
	copy(data, vals)
	return &AlignedBuffer[T]{data: data}
}

// Len returns the number of elements, fixed for the buffer's lifetime.
func (b *AlignedBuffer[T]) Len() int {
	return len(b.data)
}

// Get returns the element at i. The caller must ensure 0 <= i < Len(); it
// is the unchecked accessor used on the hot path.
func (b *AlignedBuffer[T]) Get(i int) T {
	return b.data[i]
}

// Set writes the element at i. The caller must ensure 0 <= i < Len().
func (b *AlignedBuffer[T]) Set(i int, v T) {
	b.data[i] = v
}

// At returns the element at i, or [nttecerr.ErrOutOfRange] if i is beyond
// the buffer's length.
func (b *AlignedBuffer[T]) At(i int) (T, error) {
	if i < 0 || i >= len(b.data) {
		var zero T
		return zero, nttecerr.ErrOutOfRange
	}
	return b.data[i], nil
}

// Front returns the first element.
func (b *AlignedBuffer[T]) Front() T {
	return b.data[0]
}

// Back returns the last element.
func (b *AlignedBuffer[T]) Back() T {
	return b.data[len(b.data)-1]
}

// Data exposes the backing slice directly, for callers (the ring and ntt
// packages) that operate on contiguous runs without per-element bounds
// checks.
func (b *AlignedBuffer[T]) Data() []T {
	return b.data
}

// Clone deep-copies the buffer.
func (b *AlignedBuffer[T]) Clone() *AlignedBuffer[T] {
	return NewFromSlice(b.data)
}

// CopyFrom overwrites b element-wise from src. It fails with
// [nttecerr.ErrInvalidArgument], leaving b unmodified, if the lengths
// differ.
func (b *AlignedBuffer[T]) CopyFrom(src *AlignedBuffer[T]) error {
	if len(src.data) != len(b.data) {
		return nttecerr.ErrInvalidArgument
	}
	copy(b.data, src.data)
	return nil
}

// MoveFrom transfers src's backing storage into b and resets src to an
// empty buffer. It fails with [nttecerr.ErrInvalidArgument], leaving
// both b and src unmodified, if the lengths differ.
func (b *AlignedBuffer[T]) MoveFrom(src *AlignedBuffer[T]) error {
	if len(src.data) != len(b.data) {
		return nttecerr.ErrInvalidArgument
	}
	b.data = src.data
	src.data = nil
	return nil
}

// Swap exchanges the storage of a and b.
func Swap[T any](a, b *AlignedBuffer[T]) {
	a.data, b.data = b.data, a.data
}

// Equal reports whether a and b hold the same length and elements.
func Equal[T comparable](a, b *AlignedBuffer[T]) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Compare returns -1, 0, or +1 as a is less than, equal to, or greater
// than b under lexicographic order over elements, with a shorter buffer
// that is a prefix of a longer one sorting first.
func Compare[T constraints.Ordered](a, b *AlignedBuffer[T]) int {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	for i := 0; i < n; i++ {
		switch {
		case a.data[i] < b.data[i]:
			return -1
		case a.data[i] > b.data[i]:
			return 1
		}
	}
	switch {
	case len(a.data) < len(b.data):
		return -1
	case len(a.data) > len(b.data):
		return 1
	default:
		return 0
	}
}
