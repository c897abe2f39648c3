package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slaperche-scality/nttec/nttecerr"
)

func TestNewFilledEqualsExplicitValues(t *testing.T) {
	a := NewFilled[int](5, 0)
	b := NewFromSlice([]int{0, 0, 0, 0, 0})
	require.True(t, Equal(a, b))
}

func TestCompareShorterPrefixIsLess(t *testing.T) {
	a := NewFromSlice([]int{1, 3, 5, 7})
	b := NewFromSlice([]int{1, 3, 5, 7, 10})
	require.Equal(t, -1, Compare(a, b))
}

func TestCompareElementWise(t *testing.T) {
	a := NewFromSlice([]int{1, 3, 5, 7})
	b := NewFromSlice([]int{1, 3, 8, 7})
	require.Equal(t, -1, Compare(a, b))
}

func TestCompareIsAStrictTotalOrder(t *testing.T) {
	a := NewFromSlice([]int{1, 2, 3})
	b := NewFromSlice([]int{1, 2, 3})
	c := NewFromSlice([]int{1, 2, 4})

	require.Equal(t, 0, Compare(a, b))
	require.Equal(t, -1, Compare(a, c))
	require.Equal(t, 1, Compare(c, a))
}

func TestEqualIsReflexiveSymmetricTransitive(t *testing.T) {
	a := NewFromSlice([]int{1, 2, 3})
	b := NewFromSlice([]int{1, 2, 3})
	c := NewFromSlice([]int{1, 2, 3})

	require.True(t, Equal(a, a))
	require.True(t, Equal(a, b))
	require.True(t, Equal(b, a))
	require.True(t, Equal(b, c))
	require.True(t, Equal(a, c))
}

func TestAtOutOfRange(t *testing.T) {
	a := New[int](3)
	_, err := a.At(3)
	require.ErrorIs(t, err, nttecerr.ErrOutOfRange)

	v, err := a.At(0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestFrontBack(t *testing.T) {
	a := NewFromSlice([]int{10, 20, 30})
	require.Equal(t, 10, a.Front())
	require.Equal(t, 30, a.Back())
}

func TestCloneIsIndependent(t *testing.T) {
	a := NewFromSlice([]int{1, 2, 3})
	b := a.Clone()
	b.Set(0, 99)
	require.Equal(t, 1, a.Get(0))
	require.Equal(t, 99, b.Get(0))
}

func TestCopyFromMismatchedSizeFailsAndLeavesDestinationUnmodified(t *testing.T) {
	dst := NewFromSlice([]int{1, 2, 3})
	src := NewFromSlice([]int{9, 9})

	err := dst.CopyFrom(src)
	require.ErrorIs(t, err, nttecerr.ErrInvalidArgument)
	require.Equal(t, []int{1, 2, 3}, dst.Data())
}

func TestCopyFromMatchingSize(t *testing.T) {
	dst := NewFromSlice([]int{1, 2, 3})
	src := NewFromSlice([]int{9, 8, 7})

	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, []int{9, 8, 7}, dst.Data())
}

func TestMoveFromTransfersStorageAndEmptiesSource(t *testing.T) {
	dst := NewFromSlice([]int{1, 2, 3})
	src := NewFromSlice([]int{9, 8, 7})

	require.NoError(t, dst.MoveFrom(src))
	require.Equal(t, []int{9, 8, 7}, dst.Data())
	require.Equal(t, 0, src.Len())
}

func TestMoveFromMismatchedSizeFailsAndLeavesBothUnmodified(t *testing.T) {
	dst := NewFromSlice([]int{1, 2, 3})
	src := NewFromSlice([]int{9, 9})

	err := dst.MoveFrom(src)
	require.ErrorIs(t, err, nttecerr.ErrInvalidArgument)
	require.Equal(t, []int{1, 2, 3}, dst.Data())
	require.Equal(t, []int{9, 9}, src.Data())
}

func TestSwapExchangesStorage(t *testing.T) {
	a := NewFromSlice([]int{1, 2, 3})
	b := NewFromSlice([]int{4, 5})

	Swap(a, b)

	require.Equal(t, []int{4, 5}, a.Data())
	require.Equal(t, []int{1, 2, 3}, b.Data())
}
