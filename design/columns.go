package design

import "github.com/bigattichouse/taguchi"

// ColumnsNeeded returns cols(L, p) = ⌈log_p(L)⌉, the number of base-p OA
// columns a factor of L levels must be packed into (§4.2). L ≤ 1 or p ≤ 1
// both collapse to 1 column, matching original_source's
// columns_needed_for_factor.
func ColumnsNeeded(levels, base int) int {
	if levels <= 1 || base <= 1 {
		return 1
	}
	cols := 1
	capacity := base
	for capacity < levels {
		capacity *= base
		cols++
	}
	return cols
}

// TotalColumns returns total_cols(D, p), the sum of ColumnsNeeded across
// every factor in def for a base-p array (§4.2).
func TotalColumns(def *taguchi.ExperimentDefinition, base int) int {
	total := 0
	for _, f := range def.Factors {
		total += ColumnsNeeded(len(f.Levels), base)
	}
	return total
}
