package ntt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slaperche-scality/nttec/ring"
)

// 257 is a Fermat prime (2^8+1) whose multiplicative group has order
// 256, a convenient power of two for exercising a radix-2 transform of
// every length from 2 up to 256.
func newTestRing(t *testing.T) *ring.Ring[uint64] {
	t.Helper()
	r, err := ring.New[uint64](257)
	require.NoError(t, err)
	return r
}

func TestFFTThenIFFTIsIdentity(t *testing.T) {
	r := newTestRing(t)
	for _, n := range []int{1, 2, 4, 8, 16, 32, 64, 128, 256} {
		n := n
		t.Run("", func(t *testing.T) {
			omega := r.GetNthRoot(uint64(n))
			d, err := NewRadix2(r, n, omega)
			require.NoError(t, err)

			in := make([]uint64, n)
			for i := range in {
				in[i] = uint64(i % 257)
			}

			freq := make([]uint64, n)
			require.NoError(t, d.FFT(freq, in))

			back := make([]uint64, n)
			require.NoError(t, d.IFFT(back, freq))

			require.Equal(t, in, back)
		})
	}
}

func TestFFTInvThenScaleEqualsIFFT(t *testing.T) {
	r := newTestRing(t)
	n := 16
	omega := r.GetNthRoot(uint64(n))
	d, err := NewRadix2(r, n, omega)
	require.NoError(t, err)

	in := make([]uint64, n)
	for i := range in {
		in[i] = uint64(i + 1)
	}
	freq := make([]uint64, n)
	require.NoError(t, d.FFT(freq, in))

	unscaled := make([]uint64, n)
	require.NoError(t, d.FFTInv(unscaled, freq))

	scaled := make([]uint64, n)
	require.NoError(t, d.IFFT(scaled, freq))

	want := make([]uint64, n)
	r.MulCoefToBuf(d.invN, unscaled, want)
	require.Equal(t, want, scaled)
}

func TestNewRadix2RejectsNonPowerOfTwoLength(t *testing.T) {
	r := newTestRing(t)
	omega := r.GetNthRoot(6)
	_, err := NewRadix2(r, 6, omega)
	require.Error(t, err)
}

func TestNewRadix2RejectsWrongRoot(t *testing.T) {
	r := newTestRing(t)
	_, err := NewRadix2(r, 8, 5) // 5 is not an 8th root of unity of 257
	require.Error(t, err)
}

// 257 is a Fermat prime, so building the driver over a *ring.FermatRing
// - via its embedded *ring.Ring[uint64] - exercises the shift-and-fold
// Mul strategy on every butterfly, not just the generic double-width
// path newTestRing uses.
func TestFFTThenIFFTIsIdentityOverFermatRing(t *testing.T) {
	fr, err := ring.NewFermatRing[uint64](257)
	require.NoError(t, err)

	for _, n := range []int{1, 2, 4, 8, 16, 32, 64, 128, 256} {
		n := n
		t.Run("", func(t *testing.T) {
			omega := fr.GetNthRoot(uint64(n))
			d, err := NewRadix2(fr.Ring, n, omega)
			require.NoError(t, err)

			in := make([]uint64, n)
			for i := range in {
				in[i] = uint64(i % 257)
			}

			freq := make([]uint64, n)
			require.NoError(t, d.FFT(freq, in))

			back := make([]uint64, n)
			require.NoError(t, d.IFFT(back, freq))

			require.Equal(t, in, back)
		})
	}
}

func TestFFTRejectsWrongLength(t *testing.T) {
	r := newTestRing(t)
	omega := r.GetNthRoot(8)
	d, err := NewRadix2(r, 8, omega)
	require.NoError(t, err)

	err = d.FFT(make([]uint64, 4), make([]uint64, 8))
	require.Error(t, err)
}
