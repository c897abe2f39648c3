// Package arith provides the number-theoretic building blocks shared by
// the ring package: extended GCD, prime factorization, divisor
// enumeration, and modular exponentiation, generic over the unsigned
// integer widths a ring element may take.
package arith

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// ExtendedGCD returns (g, s, t) with g = gcd(a, b) and s*a + t*b = g.
//
// The Bezout coefficients s and t are signed and can exceed the range of
// T, which is why they go through [math/big] rather than a hand-rolled
// signed ladder: big.Int already is the arbitrary-width signed integer
// the ecosystem reaches for whenever a computation no longer fits in a
// machine word.
func ExtendedGCD[T constraints.Unsigned](a, b T) (g T, s, t int64) {
	ba := new(big.Int).SetUint64(uint64(a))
	bb := new(big.Int).SetUint64(uint64(b))
	bg, bs, bt := new(big.Int), new(big.Int), new(big.Int)
	bg.GCD(bs, bt, ba, bb)
	return T(bg.Uint64()), bs.Int64(), bt.Int64()
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Unsigned](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// FactorPrime returns the prime factorization of n by trial division up
// to floor(sqrt(n)): primes[i] raised to exponents[i], primes in strictly
// increasing order. n must be at least 1; FactorPrime(1) returns empty
// slices.
func FactorPrime[T constraints.Unsigned](n T) (primes []T, exponents []int) {
	m := n
	for p := T(2); p*p <= m; p++ {
		if m%p != 0 {
			continue
		}
		e := 0
		for m%p == 0 {
			m /= p
			e++
		}
		primes = append(primes, p)
		exponents = append(exponents, e)
	}
	if m > 1 {
		primes = append(primes, m)
		exponents = append(exponents, 1)
	}
	return primes, exponents
}

// PrimeFactors expands (primes, exponents) into a flat slice where each
// prime is replicated according to its exponent, e.g. (2,3),(5,1) ->
// [2,2,2,5].
func PrimeFactors[T constraints.Unsigned](primes []T, exponents []int) []T {
	var out []T
	for i, p := range primes {
		for j := 0; j < exponents[i]; j++ {
			out = append(out, p)
		}
	}
	return out
}

// ProperDivisors returns n/p for each distinct prime divisor p of n.
func ProperDivisors[T constraints.Unsigned](n T, primes []T) []T {
	out := make([]T, len(primes))
	for i, p := range primes {
		out[i] = n / p
	}
	return out
}

// GetCodeLen returns the smallest integer no smaller than nMin that
// divides nb, or ok=false if none exists in [nMin, nb].
func GetCodeLen[T constraints.Unsigned](nb, nMin T) (length T, ok bool) {
	if nMin > nb {
		return 0, false
	}
	for candidate := nMin; candidate <= nb; candidate++ {
		if nb%candidate == 0 {
			return candidate, true
		}
	}
	return 0, false
}

// GetCodeLenHighCompo returns the smallest integer no smaller than nMin
// that can be written as a product of a (possibly empty) multiset of the
// given factors, or ok=false if no such product exists. factors is
// typically the flattened, replicated prime factorization of q-1
// ([PrimeFactors]).
//
// It proceeds by breadth-first expansion of the products reachable from
// 1 by multiplying in one factor at a time, pruning any product already
// exceeding the best candidate found so far.
func GetCodeLenHighCompo[T constraints.Unsigned](factors []T, nMin T) (length T, ok bool) {
	reachable := map[T]struct{}{1: {}}
	frontier := []T{1}
	best, haveBest := T(0), false

	for len(frontier) > 0 {
		var next []T
		for _, v := range frontier {
			if v >= nMin && (!haveBest || v < best) {
				best, haveBest = v, true
			}
			for _, f := range factors {
				p := v * f
				if haveBest && p >= best {
					continue
				}
				if _, seen := reachable[p]; seen {
					continue
				}
				reachable[p] = struct{}{}
				next = append(next, p)
			}
		}
		frontier = next
	}

	return best, haveBest
}

// ModExp returns base^exponent mod q via binary (square-and-multiply)
// exponentiation, using mul as the modular multiplication for T.
func ModExp[T constraints.Unsigned](base, exponent T, mul func(a, b T) T) T {
	if exponent == 0 {
		return 1
	}
	result := T(1)
	b := base
	for e := exponent; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mul(result, b)
		}
		b = mul(b, b)
	}
	return result
}
