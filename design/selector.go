package design

import (
	"fmt"

	"github.com/bigattichouse/taguchi"
	"github.com/bigattichouse/taguchi/oa"
)

// candidate is a catalog array annotated with how it scores against one
// ExperimentDefinition, computed once up front so the selection rules in
// SelectArray read as straight comparisons rather than repeated recomputation.
type candidate struct {
	array      *taguchi.OrthogonalArray
	needed     int
	exactBase  bool
	marginPct  int
	goodMargin bool
}

// SelectArray picks the catalog array best suited to def, following the
// exact-base / good-margin / smallest-fit priority order of §4.3. It is
// grounded on original_source/src/lib/generator.c's
// get_suggested_array_for_factors, generalized from that function's
// single-pass bookkeeping into an explicit candidate list so the four
// priority tiers can be expressed as plain, separately testable steps.
func SelectArray(def *taguchi.ExperimentDefinition) (string, error) {
	maxLevel := def.MaxLevel()

	var candidates []candidate
	for _, a := range oa.All() {
		needed := TotalColumns(def, a.P)
		if needed > a.C {
			continue
		}
		marginPct := (a.C - needed) * 100 / needed
		candidates = append(candidates, candidate{
			array:      a,
			needed:     needed,
			exactBase:  a.P == maxLevel,
			marginPct:  marginPct,
			goodMargin: marginPct >= 50 && marginPct <= 200,
		})
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %d factors, max level %d", ErrCapacity, len(def.Factors), maxLevel)
	}

	if name, ok := selectExactBase(candidates); ok {
		return name, nil
	}

	smallestFit := candidates[0]
	for _, c := range candidates[1:] {
		if c.array.R < smallestFit.array.R {
			smallestFit = c
		}
	}

	if name, ok := selectGoodMarginWithinCap(candidates, smallestFit.array.R); ok {
		return name, nil
	}

	return smallestFit.array.Name, nil
}

// selectExactBase implements §4.3 priority 1: among candidates whose base
// equals the dominant factor level count, prefer a good-margin one (largest
// R among those); failing that, the smallest-R exact-base candidate.
func selectExactBase(candidates []candidate) (string, bool) {
	var bestGood, bestPlain *candidate
	for i := range candidates {
		c := &candidates[i]
		if !c.exactBase {
			continue
		}
		if c.goodMargin {
			if bestGood == nil || c.array.R > bestGood.array.R {
				bestGood = c
			}
		} else {
			if bestPlain == nil || c.array.R < bestPlain.array.R {
				bestPlain = c
			}
		}
	}
	if bestGood != nil {
		return bestGood.array.Name, true
	}
	if bestPlain != nil {
		return bestPlain.array.Name, true
	}
	return "", false
}

// selectGoodMarginWithinCap implements §4.3 priority 2: among candidates
// whose R is at most 4x the smallest-fit R, the good-margin one with the
// highest margin percentage.
func selectGoodMarginWithinCap(candidates []candidate, smallestFitR int) (string, bool) {
	var best *candidate
	for i := range candidates {
		c := &candidates[i]
		if c.array.R > smallestFitR*4 {
			continue
		}
		if !c.goodMargin {
			continue
		}
		if best == nil || c.marginPct > best.marginPct {
			best = c
		}
	}
	if best != nil {
		return best.array.Name, true
	}
	return "", false
}
