package ring

import (
	"github.com/slaperche-scality/nttec/omegacache"
)

// ComputeOmegasCached behaves like [Ring.ComputeOmegas], except the
// result is cached on disk, keyed by omega, via store. A missing cache
// entry is computed and written; an existing one is read back and
// validated to hold exactly n elements.
//
// This follows the single-producer, not-safe-under-concurrent-writers
// contract of the original cache: callers sharing a store across
// goroutines or processes must serialize their own writes.
func (r *Ring[T]) ComputeOmegasCached(store omegacache.Store, n int, omega T) ([]T, error) {
	name := omegacache.CacheName(omega)
	if store.Exists(name) {
		return omegacache.Load[T](store, omega, n)
	}

	w := make([]T, n)
	r.ComputeOmegas(w, n, omega)
	if err := omegacache.Save(store, omega, w); err != nil {
		return nil, err
	}
	return w, nil
}
