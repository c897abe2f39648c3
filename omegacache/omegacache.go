// Package omegacache implements the on-disk cache for the powers of a
// root of unity that [ring.Ring.ComputeOmegas] would otherwise
// recompute on every call. The original cache hardcoded the process's
// current working directory and a single shared file per omega, with no
// way to substitute a test double; this package factors that out behind
// a [Store] interface, per the reimplementation note in the design
// notes the cache's caveats come from.
package omegacache

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/slaperche-scality/nttec/nttecerr"
)

// Store abstracts the filesystem operations the cache needs: opening an
// existing entry for reading, creating a new one for writing, and
// checking whether an entry exists without the open-then-close probe
// that checking existence via Open alone would require. DirStore is the
// default, disk-backed implementation; tests can supply an in-memory
// double.
type Store interface {
	// Open opens an existing cache entry for reading. It returns an
	// error satisfying errors.Is(err, os.ErrNotExist) (or equivalent)
	// when the entry does not exist.
	Open(name string) (io.ReadCloser, error)
	// Create opens a cache entry for writing, truncating it if present.
	Create(name string) (io.WriteCloser, error)
	// Exists reports whether a cache entry named name is present.
	Exists(name string) bool
}

// CacheName returns the cache filename for the n-th root of unity omega,
// matching the original "W<omega>.cache" convention.
func CacheName[T constraints.Unsigned](omega T) string {
	return fmt.Sprintf("W%d.cache", omega)
}

// Load reads n decimal elements, one per line, from the cache entry
// named after omega via store. Load does not check existence first
// (callers can use [Store.Exists]); a missing entry surfaces whatever
// error the Store's Open returns.
func Load[T constraints.Unsigned](store Store, omega T, n int) ([]T, error) {
	f, err := store.Open(CacheName(omega))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w := make([]T, 0, n)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		v, err := strconv.ParseUint(scanner.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("omegacache: malformed entry: %w", err)
		}
		w = append(w, T(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(w) != n {
		return nil, fmt.Errorf("omegacache: expected %d elements, read %d: %w", n, len(w), nttecerr.ErrAssertionFailure)
	}
	return w, nil
}

// Save writes w, one decimal element per line, to the cache entry named
// after omega via store.
func Save[T constraints.Unsigned](store Store, omega T, w []T) error {
	f, err := store.Create(CacheName(omega))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	for _, v := range w {
		if _, err := fmt.Fprintf(bw, "%d\n", uint64(v)); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
