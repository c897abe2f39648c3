// Package ntt defines the boundary between a ring's arithmetic and a
// concrete Number-Theoretic Transform algorithm, plus one reference
// implementation ([Radix2]). Which algorithm a caller picks — radix-2,
// mixed-radix, additive — is explicitly out of scope for the ring
// package itself; only the contract here is required.
package ntt

import "golang.org/x/exp/constraints"

// Driver transforms length-n buffers over a ring, for a fixed n-th root
// of unity chosen at construction. It does not own the buffers passed to
// it: out and in may alias only where the concrete implementation's
// documentation says so.
//
// FFT followed by IFFT is the identity: for every input x,
// IFFT(FFT(x)) == x.
type Driver[T constraints.Unsigned] interface {
	// N returns the transform length.
	N() int

	// FFT writes the forward transform of in into out. len(in) and
	// len(out) must both equal N().
	FFT(out, in []T) error

	// IFFT writes the inverse transform of in into out, including the
	// 1/n scaling: FFT then IFFT is the identity.
	IFFT(out, in []T) error

	// FFTInv writes the un-scaled inverse transform of in into out,
	// i.e. IFFT without the final multiplication by n^-1 mod q. Some
	// callers apply that scaling themselves, folded into a later step.
	FFTInv(out, in []T) error
}
