package ring

// weakRandSource is the minimal randomness surface [Ring.WeakRand]
// needs, satisfied by *math/rand.Rand and by deterministic test doubles.
type weakRandSource interface {
	Int63() int64
}

// WeakRand returns a pseudo-random element of the multiplicative group,
// i.e. uniformly distributed in [1, q-1]. It is "weak" in the
// cryptographic sense: src need not be a secure generator, and none of
// the operations in this package depend on unpredictability.
func (r *Ring[T]) WeakRand(src weakRandSource) T {
	h := uint64(r.QMinusOne())
	if h == 0 {
		return 1
	}
	return T(uint64(src.Int63())%h) + 1
}
