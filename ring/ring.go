// Package ring implements the Ring/Field abstraction: modular
// arithmetic over Z/qZ, discovery of primitive roots and n-th roots of
// unity, and the buffer-level primitives an NTT driver composes into a
// transform.
//
// Construction is two-phase: [New] allocates and factors q-1, then
// searches for a primitive root before returning. Once returned, a
// *Ring is immutable and safe for concurrent readers.
package ring

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/slaperche-scality/nttec/arith"
	"github.com/slaperche-scality/nttec/nttecerr"
	"github.com/slaperche-scality/nttec/wideint"
)

// Ring is the ring of integers modulo a prime q that fits in T. The
// multiplicative group is taken to have order q-1, so prime-power moduli
// are not supported: for them the primitive root, GetOrder and Inv
// results are not correct.
type Ring[T constraints.Unsigned] struct {
	q T

	// prime factorization of q-1: primes[i]^exponents[i].
	primes     []T
	exponents  []int
	allFactors []T // primes, each repeated exponents[i] times
	// proper divisors of q-1, one per distinct prime: (q-1)/primes[i].
	properDivisors []T

	root T

	// mul is the modular-multiplication strategy. New installs the
	// generic double-width accumulator; NewFermatRing overwrites it with
	// a shift-and-fold reduction. Every other operation (Exp, Div, and
	// the buffer-level ops in buffers.go) is built on top of [Ring.Mul],
	// so swapping this one field is enough to make the whole ring -
	// including callers that only hold the embedded *Ring[T], such as
	// an ntt.Radix2 built over a FermatRing - benefit from the faster
	// reduction without any virtual dispatch.
	mul func(a, b T) T
}

// New constructs a Ring for modulus q: it factors q-1 and searches for a
// primitive root before returning, so a *Ring is fully initialized and
// read-only from the caller's point of view. q must be at least 2.
func New[T constraints.Unsigned](q T) (*Ring[T], error) {
	if q < 2 {
		return nil, fmt.Errorf("ring: invalid modulus %v: %w", q, nttecerr.ErrAssertionFailure)
	}

	r := &Ring[T]{q: q}
	r.mul = func(a, b T) T { return mulMod(a, b, r.q) }
	r.computeFactorsOfOrder()
	if err := r.findPrimitiveRoot(); err != nil {
		return nil, err
	}
	return r, nil
}

// Q returns the ring's cardinality.
func (r *Ring[T]) Q() T {
	return r.q
}

// QMinusOne returns the order of the multiplicative group.
func (r *Ring[T]) QMinusOne() T {
	return r.q - 1
}

func (r *Ring[T]) computeFactorsOfOrder() {
	h := r.QMinusOne()
	r.primes, r.exponents = arith.FactorPrime(h)
	r.allFactors = arith.PrimeFactors(r.primes, r.exponents)
	r.properDivisors = arith.ProperDivisors(h, r.primes)
}

// mulMod computes a*b mod q via a double-width accumulator: 32-bit
// elements widen into a uint64 product, everything else (uint, uint64)
// widens into the 128-bit accumulator from wideint, which is how both
// supported machine-word widths avoid overflowing a*b before reduction.
func mulMod[T constraints.Unsigned](a, b, q T) T {
	if v, is32 := any(q).(uint32); is32 {
		return T(wideint.ModMul32(uint32(a), uint32(b), v))
	}
	return T(wideint.ModMul64(uint64(a), uint64(b), uint64(q)))
}

// Check reports whether a is a valid element of the ring, i.e. 0 <= a < q
// (the lower bound always holds for an unsigned T).
func (r *Ring[T]) Check(a T) bool {
	return a < r.q
}

func (r *Ring[T]) assertCheck(a T) {
	if !r.Check(a) {
		panic(fmt.Errorf("ring: element %v out of range for modulus %v: %w", a, r.q, nttecerr.ErrAssertionFailure))
	}
}

// Neg returns (q - a) mod q.
func (r *Ring[T]) Neg(a T) T {
	r.assertCheck(a)
	if a == 0 {
		return 0
	}
	return r.q - a
}

// Add returns (a + b) mod q.
func (r *Ring[T]) Add(a, b T) T {
	r.assertCheck(a)
	r.assertCheck(b)
	s := a + b
	if s >= r.q {
		s -= r.q
	}
	return s
}

// Sub returns (a - b) mod q.
func (r *Ring[T]) Sub(a, b T) T {
	r.assertCheck(a)
	r.assertCheck(b)
	if a >= b {
		return a - b
	}
	return r.q - (b - a)
}

// Mul returns (a * b) mod q, via the ring's installed multiplication
// strategy (a double-width accumulator by default, or a Fermat-prime
// fold for a ring built with [NewFermatRing]).
func (r *Ring[T]) Mul(a, b T) T {
	r.assertCheck(a)
	r.assertCheck(b)
	return r.mul(a, b)
}

// Inv returns the multiplicative inverse of a, via the extended Euclid
// algorithm (Bezout's identity) on (a, q).
func (r *Ring[T]) Inv(a T) T {
	r.assertCheck(a)
	_, s, _ := arith.ExtendedGCD(a, r.q)
	if s < 0 {
		s += int64(r.q)
	}
	return T(uint64(s))
}

// Div returns a * Inv(b).
func (r *Ring[T]) Div(a, b T) T {
	return r.Mul(a, r.Inv(b))
}

// Exp returns a^e mod q by square-and-multiply. Exp(a, 0) = 1 and
// Exp(a, 1) = a for every a, including a = 0.
func (r *Ring[T]) Exp(a, e T) T {
	r.assertCheck(a)
	return arith.ModExp(a, e, r.Mul)
}

// ExpNaive is the O(e) reference exponentiation, kept alongside Exp for
// the naive-vs-quick cross-check [Ring.ExpQuick] implies.
func (r *Ring[T]) ExpNaive(a, e T) T {
	r.assertCheck(a)
	if e == 0 {
		return 1
	}
	result := a
	for i := T(1); i < e; i++ {
		result = r.Mul(result, a)
	}
	return result
}

// ExpQuick is an alias for Exp, named to pair with ExpNaive in
// cross-checking tests.
func (r *Ring[T]) ExpQuick(a, e T) T {
	return r.Exp(a, e)
}

// Log returns the smallest r in [1, q) such that a^r = b, or
// [nttecerr.ErrNoSolution] if no such r exists.
func (r *Ring[T]) Log(a, b T) (T, error) {
	r.assertCheck(a)
	for e := T(1); e < r.q; e++ {
		if r.Exp(a, e) == b {
			return e, nil
		}
	}
	return 0, fmt.Errorf("ring: no r with %v^r = %v: %w", a, b, nttecerr.ErrNoSolution)
}

// IsQuadraticResidue reports whether there is some x with x^2 = v mod q,
// via the Euler criterion v^((q-1)/2) in {0, 1, q-1}: 0 only when v = 0,
// 1 when v is a nonzero residue, q-1 when v is a non-residue. This
// replaces an O(q) brute-force scan with an O(log q) exponentiation;
// both agree on every v.
func (r *Ring[T]) IsQuadraticResidue(v T) bool {
	r.assertCheck(v)
	if v == 0 {
		return true
	}
	return r.Exp(v, (r.q-1)/2) == 1
}

// IsPrimitiveRoot reports whether x generates the full multiplicative
// group: true iff x^d != 1 for every d in the cached set of proper
// divisors {(q-1)/p_i}.
func (r *Ring[T]) IsPrimitiveRoot(x T) bool {
	for _, d := range r.properDivisors {
		if r.Exp(x, d) == 1 {
			return false
		}
	}
	return true
}

func (r *Ring[T]) findPrimitiveRoot() error {
	h := r.QMinusOne()
	if h == 0 {
		r.root = 1
		return nil
	}
	for x := T(2); x <= h; x++ {
		if r.IsPrimitiveRoot(x) {
			r.root = x
			return nil
		}
	}
	return fmt.Errorf("ring: no primitive root found for modulus %v: %w", r.q, nttecerr.ErrAssertionFailure)
}

// PrimitiveRoot returns the cached generator of the multiplicative
// group, found once at construction time.
func (r *Ring[T]) PrimitiveRoot() T {
	return r.root
}

// GetOrder returns the smallest d >= 1 with x^d = 1, by walking the
// cached factorization of q-1 and discarding primes whose full power is
// not needed to reach the identity; the recursive formulation in the
// original algorithm is lowered here to a loop over a working copy of
// the factorization so that the cardinality of q-1 does not bound the
// call stack depth.
func (r *Ring[T]) GetOrder(x T) T {
	if x == 0 || x == 1 {
		return 1
	}

	h := r.QMinusOne()
	primes := append([]T(nil), r.primes...)
	exponents := append([]int(nil), r.exponents...)

	for len(primes) > 0 {
		p := primes[len(primes)-1]
		e := exponents[len(exponents)-1]
		primes = primes[:len(primes)-1]
		exponents = exponents[:len(exponents)-1]

		y := h / p
		if r.Exp(x, y) != 1 {
			for e > 1 {
				y /= p
				e--
			}
			continue
		}

		if e > 1 {
			primes = append(primes, p)
			exponents = append(exponents, e-1)
		}
		h = y
	}

	if h == 1 {
		return r.QMinusOne()
	}
	return h
}

// CheckPrimitiveRoot reports whether nb is a primitive root, via
// GetOrder(nb) == q-1.
func (r *Ring[T]) CheckPrimitiveRoot(nb T) bool {
	return r.GetOrder(nb) == r.QMinusOne()
}

// CheckOrderNaive is the brute-force reference for GetOrder, used only
// in tests: it verifies nb^order = 1 and that no smaller positive power
// below order reaches 1.
func (r *Ring[T]) CheckOrderNaive(nb, order T) bool {
	if r.Exp(nb, order) != 1 {
		return false
	}
	tmp := nb
	for i := T(1); i < order; i++ {
		if tmp == 1 {
			return false
		}
		tmp = r.Mul(tmp, nb)
	}
	return true
}

// GetNthRoot returns g^((q-1)/d), where d = gcd(n, q-1) and g is the
// primitive root: an element of order dividing n, hence an n-th root of
// unity.
func (r *Ring[T]) GetNthRoot(n T) T {
	d := arith.GCD(n, r.QMinusOne())
	return r.Exp(r.root, r.QMinusOne()/d)
}

// GetCodeLen returns the smallest integer no smaller than nMin dividing
// q-1, or [nttecerr.ErrNoSolution] if none exists.
func (r *Ring[T]) GetCodeLen(nMin T) (T, error) {
	length, ok := arith.GetCodeLen(r.QMinusOne(), nMin)
	if !ok {
		return 0, fmt.Errorf("ring: no code length >= %v divides %v: %w", nMin, r.QMinusOne(), nttecerr.ErrNoSolution)
	}
	return length, nil
}

// GetCodeLenHighCompo returns the smallest integer no smaller than nMin
// expressible as a product of the ring's prime factors of q-1 (with
// multiplicity), or [nttecerr.ErrNoSolution] if none exists.
func (r *Ring[T]) GetCodeLenHighCompo(nMin T) (T, error) {
	length, ok := arith.GetCodeLenHighCompo(r.allFactors, nMin)
	if !ok {
		return 0, fmt.Errorf("ring: no highly composite code length >= %v: %w", nMin, nttecerr.ErrNoSolution)
	}
	return length, nil
}

// ComputeOmegas writes W[i] = omega^i for 0 <= i < n into w, which must
// hold at least n elements.
func (r *Ring[T]) ComputeOmegas(w []T, n int, omega T) {
	for i := 0; i < n; i++ {
		w[i] = r.Exp(omega, T(i))
	}
}
