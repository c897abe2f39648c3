package ring

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/slaperche-scality/nttec/nttecerr"
)

// FermatRing specializes [Ring] for a Fermat prime q = 2^(2^k) + 1. Since
// q-1 is a power of two, its only prime factor is 2, which already makes
// the generic primitive-root search trivial (there is exactly one
// proper divisor to test); what this type adds is a cheap multiplication
// strategy that reduces modulo q with a shift, a mask and a fold
// instead of a double-width division. It is installed on the embedded
// *Ring[T]'s mul field rather than overridden as a method, so every
// operation built on top of [Ring.Mul] - Exp, Div, the buffer-level ops
// in buffers.go, and an ntt.Radix2 constructed over the embedded
// *Ring[T] - picks it up automatically; Go's lack of virtual dispatch
// through embedding would otherwise make those call back into the
// generic Mul.
type FermatRing[T constraints.Unsigned] struct {
	*Ring[T]
	m uint // q - 1 == 1<<m
}

// NewFermatRing constructs a FermatRing for q, failing with
// [nttecerr.ErrInvalidArgument] if q-1 is not a power of two (i.e. q is
// not of Fermat-prime shape).
func NewFermatRing[T constraints.Unsigned](q T) (*FermatRing[T], error) {
	h := q - 1
	if h == 0 || h&(h-1) != 0 {
		return nil, fmt.Errorf("ring: %v-1 is not a power of two: %w", q, nttecerr.ErrInvalidArgument)
	}

	base, err := New(q)
	if err != nil {
		return nil, err
	}
	m := uint(bits.TrailingZeros64(uint64(h)))
	base.mul = fermatMul(m, q)
	return &FermatRing[T]{Ring: base, m: m}, nil
}

// fermatMul returns the Mul strategy for a Fermat prime q = 1<<m + 1,
// exploiting 2^m == -1 (mod q): splitting the product p = a*b into
// hi = p>>m and lo = p & (2^m - 1), p mod q reduces to (lo - hi) mod q,
// a single fold with no division.
func fermatMul[T constraints.Unsigned](m uint, q T) func(a, b T) T {
	mask := uint64(1)<<m - 1
	qi := int64(q)
	return func(a, b T) T {
		p := uint64(a) * uint64(b)
		hi := p >> m
		lo := p & mask
		// a, b < q give hi <= 2^m and lo < 2^m, so lo-hi lies in
		// [-(q-1), q-2] and one conditional add brings it into [0, q).
		d := int64(lo) - int64(hi)
		if d < 0 {
			d += qi
		}
		return T(d)
	}
}
