package cli

import (
	"fmt"
	"io"

	"github.com/bigattichouse/taguchi"
)

// printEffectsTable renders one line per factor: its level means and
// range, in the factor order CalculateMainEffects returns (§4.6).
// Grounded on original_source/src/cli/main.c's plain printf-table style.
func printEffectsTable(out io.Writer, effects []taguchi.MainEffect) {
	fmt.Fprintln(out, "Main effects:")
	for _, e := range effects {
		fmt.Fprintf(out, "  %s: means=%v range=%g\n", e.Factor, e.LevelMeans, e.Range)
	}
}
