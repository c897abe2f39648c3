package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualRingsConstructedTwice(t *testing.T) {
	a := newRing97(t)
	b := newRing97(t)
	require.True(t, a.Equal(b))
}

func TestEqualDifferentModuli(t *testing.T) {
	a := newRing97(t)
	b, err := New[uint64](257)
	require.NoError(t, err)
	require.False(t, a.Equal(b))
}

func TestEqualNilHandling(t *testing.T) {
	var a, b *Ring[uint64]
	require.True(t, a.Equal(b))

	c := newRing97(t)
	require.False(t, a.Equal(c))
	require.False(t, c.Equal(a))
}
