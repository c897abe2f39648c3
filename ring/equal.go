package ring

import (
	"github.com/google/go-cmp/cmp"
)

// Equal reports whether r and other are rings over the same modulus with
// the same cached primitive root and factorization state. Two rings
// constructed for the same q are always Equal, since init is
// deterministic; the comparison is chiefly useful in tests that build a
// *Ring twice and want to assert the cache did not drift.
func (r *Ring[T]) Equal(other *Ring[T]) bool {
	if r == nil && other == nil {
		return true
	}
	if (r == nil) != (other == nil) {
		return false
	}
	return r.q == other.q &&
		r.root == other.root &&
		cmp.Equal(r.primes, other.primes) &&
		cmp.Equal(r.exponents, other.exponents) &&
		cmp.Equal(r.allFactors, other.allFactors) &&
		cmp.Equal(r.properDivisors, other.properDivisors)
}
