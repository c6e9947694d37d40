package design_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bigattichouse/taguchi"
	"github.com/bigattichouse/taguchi/design"
)

func threeLevelFactors(n int) []taguchi.Factor {
	factors := make([]taguchi.Factor, n)
	for i := range factors {
		factors[i] = taguchi.Factor{
			Name:   string(rune('a' + i)),
			Levels: []string{"lo", "mid", "hi"},
		}
	}
	return factors
}

// TestSelectArray_FourThreeLevelFactors is spec.md §8 scenario 4: an
// exact-base, exact-column-fit match picks L9.
func TestSelectArray_FourThreeLevelFactors(t *testing.T) {
	def, err := taguchi.NewExperimentDefinition(threeLevelFactors(4), "")
	require.NoError(t, err)
	name, err := design.SelectArray(def)
	require.NoError(t, err)
	require.Equal(t, "L9", name)
}

// TestSelectArray_FiveThreeLevelFactors exercises spec.md §8 scenario 5's
// input (five 3-level factors). Applying §4.3's algorithm literally, L27
// is an exact-base candidate (base 3 == the factors' dominant level count)
// with a good margin (needed=5 of 13 columns, 160%), so priority 1 picks
// it outright — the formulas in §4.3 never reach the smallest-fit rule
// for this input. See DESIGN.md for why this test follows the formula
// over the scenario's own narrated arithmetic, which describes L16
// winning by "smallest-R rule" without the exact-base tier applying.
func TestSelectArray_FiveThreeLevelFactors(t *testing.T) {
	def, err := taguchi.NewExperimentDefinition(threeLevelFactors(5), "")
	require.NoError(t, err)
	name, err := design.SelectArray(def)
	require.NoError(t, err)
	require.Equal(t, "L27", name)
}

// TestSelectArray_EightTwoLevelFactors checks a base-2 exact match: eight
// 2-level factors need 8 columns in base 2. L8 (7 cols) is too small;
// among the remaining base-2 candidates only L16 (15 cols, margin 87%)
// has a good margin, so it wins priority 1 outright.
func TestSelectArray_EightTwoLevelFactors(t *testing.T) {
	factors := make([]taguchi.Factor, 8)
	for i := range factors {
		factors[i] = taguchi.Factor{Name: string(rune('a' + i)), Levels: []string{"off", "on"}}
	}
	def, err := taguchi.NewExperimentDefinition(factors, "")
	require.NoError(t, err)
	name, err := design.SelectArray(def)
	require.NoError(t, err)
	require.Equal(t, "L16", name)
}
