package buffer

import "github.com/slaperche-scality/nttec/nttecerr"

// MultiBuffer holds n equal-length [AlignedBuffer] instances, addressable
// as a matrix: n rows of L elements. It is the logical "n streams of
// size L" container the butterfly and Hadamard operations iterate over.
type MultiBuffer[T any] struct {
	bufs []*AlignedBuffer[T]
	n    int
	l    int
}

// NewMultiBuffer allocates n buffers of L zero-valued elements each.
func NewMultiBuffer[T any](n, l int) *MultiBuffer[T] {
	bufs := make([]*AlignedBuffer[T], n)
	for i := range bufs {
		bufs[i] = New[T](l)
	}
	return &MultiBuffer[T]{bufs: bufs, n: n, l: l}
}

// N returns the number of inner buffers.
func (m *MultiBuffer[T]) N() int {
	return m.n
}

// Length returns the length of every inner buffer.
func (m *MultiBuffer[T]) Length() int {
	return m.l
}

// Get returns the i-th inner buffer.
func (m *MultiBuffer[T]) Get(i int) *AlignedBuffer[T] {
	return m.bufs[i]
}

// Copy overwrites the i-th inner buffer with the contents of src. It
// fails with [nttecerr.ErrInvalidArgument], leaving the i-th buffer
// unmodified, if src does not hold exactly Length() elements.
func (m *MultiBuffer[T]) Copy(i int, src AlignedBuffer[T]) error {
	if src.Len() != m.l {
		return nttecerr.ErrInvalidArgument
	}
	copy(m.bufs[i].data, src.data)
	return nil
}

// Fill overwrites every element of the i-th inner buffer with v.
func (m *MultiBuffer[T]) Fill(i int, v T) {
	row := m.bufs[i].data
	for j := range row {
		row[j] = v
	}
}
