package ntt

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/slaperche-scality/nttec/nttecerr"
	"github.com/slaperche-scality/nttec/ring"
)

// Radix2 is the textbook iterative Cooley-Tukey NTT: a bit-reversal
// permutation followed by log2(n) butterfly stages, each stage doubling
// the block size (from 2 up to n) and the number of distinct twiddle
// factors in play. It requires the transform length to be a power of two and
// exists as the one concrete [Driver] this package ships. Each stage's
// twiddle factor is computed once and stepped by repeated
// multiplication, rather than re-exponentiated on every butterfly.
type Radix2[T constraints.Unsigned] struct {
	r        *ring.Ring[T]
	n        int
	logN     uint
	omega    T
	omegaInv T
	invN     T
}

// NewRadix2 constructs a driver for transform length n over r, using
// omega as the n-th root of unity. n must be a power of two and
// omega^n must equal 1 in r.
func NewRadix2[T constraints.Unsigned](r *ring.Ring[T], n int, omega T) (*Radix2[T], error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("ntt: transform length %d is not a power of two: %w", n, nttecerr.ErrInvalidArgument)
	}
	if r.Exp(omega, T(n)) != 1 {
		return nil, fmt.Errorf("ntt: omega is not an n-th root of unity for n=%d: %w", n, nttecerr.ErrInvalidArgument)
	}

	return &Radix2[T]{
		r:        r,
		n:        n,
		logN:     uint(bits.TrailingZeros(uint(n))),
		omega:    omega,
		omegaInv: r.Inv(omega),
		invN:     r.Inv(T(n)),
	}, nil
}

// N returns the transform length.
func (d *Radix2[T]) N() int {
	return d.n
}

// FFT implements [Driver.FFT].
func (d *Radix2[T]) FFT(out, in []T) error {
	if err := d.checkLen(out, in); err != nil {
		return err
	}
	d.bitReverseCopy(out, in)
	d.transform(out, d.omega)
	return nil
}

// FFTInv implements [Driver.FFTInv]: the inverse butterfly network
// without the final 1/n scaling.
func (d *Radix2[T]) FFTInv(out, in []T) error {
	if err := d.checkLen(out, in); err != nil {
		return err
	}
	d.bitReverseCopy(out, in)
	d.transform(out, d.omegaInv)
	return nil
}

// IFFT implements [Driver.IFFT]: [Radix2.FFTInv] followed by scaling
// every element by n^-1 mod q.
func (d *Radix2[T]) IFFT(out, in []T) error {
	if err := d.FFTInv(out, in); err != nil {
		return err
	}
	d.r.MulCoefToBuf(d.invN, out, out)
	return nil
}

func (d *Radix2[T]) checkLen(out, in []T) error {
	if len(out) != d.n || len(in) != d.n {
		return fmt.Errorf("ntt: buffer length must equal N()=%d: %w", d.n, nttecerr.ErrInvalidArgument)
	}
	return nil
}

// bitReverseCopy writes out[bitReverse(i)] = in[i] for every i, the
// standard prelude that lets the butterfly stages below run purely
// in-place and in index order afterwards.
func (d *Radix2[T]) bitReverseCopy(out, in []T) {
	for i := 0; i < d.n; i++ {
		j := bitReverse(uint(i), d.logN)
		out[j] = in[i]
	}
}

// bitReverse reverses the low bitsLen bits of x.
func bitReverse(x uint, bitsLen uint) uint {
	return uint(bits.Reverse64(uint64(x)) >> (64 - bitsLen))
}

// transform runs the in-place butterfly network over out, using root as
// the working n-th root of unity (omega for forward, its inverse for
// the un-scaled inverse transform).
func (d *Radix2[T]) transform(out []T, root T) {
	r := d.r
	for length := 2; length <= d.n; length <<= 1 {
		half := length / 2
		// wLen is a length-th root of unity: root^(n/length).
		wLen := r.Exp(root, T(d.n/length))
		for start := 0; start < d.n; start += length {
			w := T(1)
			for j := 0; j < half; j++ {
				u := out[start+j]
				v := r.Mul(w, out[start+j+half])
				out[start+j] = r.Add(u, v)
				out[start+j+half] = r.Sub(u, v)
				w = r.Mul(w, wLen)
			}
		}
	}
}
