package analysis

import (
	"strconv"
	"strings"

	"github.com/bigattichouse/taguchi"
)

// Recommend picks, for each effect, the level index with the extremum of
// its mean — argmax when higherIsBetter, else argmin — breaking ties by
// the lowest level index (§4.7, §9's noted first-match-scanning
// convention). It returns a comma-separated string of
// "<factor>=level_<1-based-index>" entries, one per effect, in order.
func Recommend(effects []taguchi.MainEffect, higherIsBetter bool) string {
	parts := make([]string, len(effects))
	for i, e := range effects {
		idx := bestLevelIndex(e.LevelMeans, higherIsBetter)
		parts[i] = e.Factor + "=level_" + strconv.Itoa(idx+1)
	}
	return strings.Join(parts, ",")
}

func bestLevelIndex(means []float64, higherIsBetter bool) int {
	best := 0
	for i := 1; i < len(means); i++ {
		if higherIsBetter {
			if means[i] > means[best] {
				best = i
			}
		} else {
			if means[i] < means[best] {
				best = i
			}
		}
	}
	return best
}
