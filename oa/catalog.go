package oa

import (
	"sync"

	"github.com/bigattichouse/taguchi"
)

// catalog is the sole process-wide mutable state (§5, §9): it transitions
// empty → populated exactly once, guarded by once, and is read-only after
// that. Multi-threaded first access is serialized by sync.Once, making
// construction idempotent regardless of how many goroutines race the
// first Lookup/ListNames/Info call.
var (
	once    sync.Once
	catalog map[string]*taguchi.OrthogonalArray
	names   []string
)

func ensure() {
	once.Do(func() {
		catalog = make(map[string]*taguchi.OrthogonalArray, len(supported))
		names = make([]string, 0, len(supported))
		for _, d := range supported {
			catalog[d.name] = build(d.name, d.p, d.n)
			names = append(names, d.name)
		}
	})
}

// Lookup returns the named orthogonal array, or (nil, false) if name is
// not in the catalog. Matching is case-sensitive and exact.
func Lookup(name string) (*taguchi.OrthogonalArray, bool) {
	ensure()
	a, ok := catalog[name]
	return a, ok
}

// ListNames returns the catalog's array names in stable, canonical order
// (matching spec.md §4.1's supported-set listing and the list-arrays CLI
// command, §6.6).
func ListNames() []string {
	ensure()
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Info returns the dimensions of the named array: rows, columns, and base
// level. ok is false if name is not in the catalog.
func Info(name string) (rows, cols, base int, ok bool) {
	a, found := Lookup(name)
	if !found {
		return 0, 0, 0, false
	}
	return a.R, a.C, a.P, true
}

// All returns every catalog array, in canonical order. Used by the array
// selector (design package), which must consider all candidates.
func All() []*taguchi.OrthogonalArray {
	ensure()
	out := make([]*taguchi.OrthogonalArray, 0, len(names))
	for _, n := range names {
		out = append(out, catalog[n])
	}
	return out
}
