// Package oa is the orthogonal-array catalog and generator (C1): it
// builds L(pⁿ) Rao–Hamming arrays over GF(p) for p ∈ {2, 3, 5} with a
// canonical column ordering, and caches them behind a process-wide,
// lazily-initialized, read-after-publish catalog.
//
// Construction is grounded on the "most capable" variant named in
// spec.md §9 (the earlier superseded original_source/src/lib/arrays.c
// only hardcoded L4/L8/L9/L16/L27 literal tables); this package
// generates every supported array algebraically; its tests cross-check
// only L4 against the legacy literal table.
package oa
