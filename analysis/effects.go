package analysis

import (
	"github.com/bigattichouse/taguchi"
	"github.com/bigattichouse/taguchi/design"
)

// CalculateMainEffects computes one MainEffect per factor in rs.Def.Factors
// order (§4.6). It reconstructs the run schedule deterministically from
// rs.Def and rs.ArrayName — the same inputs always yield the same
// schedule — then groups rs.Samples by each factor's level value (matched
// by string equality, not column index, so factor reordering in rs.Def
// cannot misattribute a response).
//
// Samples whose RunID falls outside the reconstructed schedule are a
// MissingResponse (§7): they are skipped silently rather than failing the
// whole calculation.
func CalculateMainEffects(rs *taguchi.ResultSet) ([]taguchi.MainEffect, error) {
	if rs.Def == nil {
		return nil, ErrNoDefinition
	}

	runs, _, err := design.GenerateRuns(rs.Def, rs.ArrayName)
	if err != nil {
		return nil, err
	}
	runByID := make(map[int]taguchi.Run, len(runs))
	for _, r := range runs {
		runByID[r.RunID] = r
	}

	effects := make([]taguchi.MainEffect, len(rs.Def.Factors))
	for i, f := range rs.Def.Factors {
		sums := make([]float64, len(f.Levels))
		counts := make([]int, len(f.Levels))

		for _, s := range rs.Samples {
			run, ok := runByID[s.RunID]
			if !ok {
				continue
			}
			levelValue, ok := run.Level(f.Name)
			if !ok {
				continue
			}
			idx := indexOfLevel(f.Levels, levelValue)
			if idx < 0 {
				continue
			}
			sums[idx] += s.Response
			counts[idx]++
		}

		means := make([]float64, len(f.Levels))
		observed := 0
		for j := range means {
			if counts[j] > 0 {
				means[j] = sums[j] / float64(counts[j])
				observed++
			}
		}

		effects[i] = taguchi.MainEffect{
			Factor:     f.Name,
			LevelMeans: means,
			Range:      effectRange(means, observed),
		}
	}
	return effects, nil
}

func indexOfLevel(levels []string, v string) int {
	for i, l := range levels {
		if l == v {
			return i
		}
	}
	return -1
}

// effectRange is max(means) - min(means), but forced to 0 when fewer than
// two levels were actually observed (§4.6) — a single observed level, or
// none, carries no contrast to report.
func effectRange(means []float64, observed int) float64 {
	if observed < 2 {
		return 0
	}
	maxV, minV := means[0], means[0]
	for _, m := range means[1:] {
		if m > maxV {
			maxV = m
		}
		if m < minV {
			minV = m
		}
	}
	return maxV - minV
}
