package design

import (
	"fmt"

	"github.com/bigattichouse/taguchi"
	"github.com/bigattichouse/taguchi/oa"
)

// GenerateRuns builds the R runs for def against the named array (§4.4).
// arrayName may be "auto", in which case SelectArray chooses one.
func GenerateRuns(def *taguchi.ExperimentDefinition, arrayName string) ([]taguchi.Run, string, error) {
	name := arrayName
	if name == "" || name == "auto" {
		selected, err := SelectArray(def)
		if err != nil {
			return nil, "", err
		}
		name = selected
	}

	a, ok := oa.Lookup(name)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownArray, name)
	}

	colStart := make([]int, len(def.Factors))
	colCount := make([]int, len(def.Factors))
	next := 0
	for i, f := range def.Factors {
		count := ColumnsNeeded(len(f.Levels), a.P)
		colStart[i] = next
		colCount[i] = count
		next += count
	}
	if next > a.C {
		return nil, "", fmt.Errorf("%w: array %s has %d columns, %d needed", ErrColumnOverflow, a.Name, a.C, next)
	}

	runs := make([]taguchi.Run, a.R)
	for r := 0; r < a.R; r++ {
		values := make([]taguchi.FactorValue, len(def.Factors))
		for i, f := range def.Factors {
			level := decodeLevel(a, r, colStart[i], colCount[i], len(f.Levels))
			values[i] = taguchi.FactorValue{Factor: f.Name, Level: f.Levels[level]}
		}
		runs[r] = taguchi.Run{RunID: r + 1, Values: values}
	}

	return runs, a.Name, nil
}

// decodeLevel maps the run's OA columns [start, start+count) into a level
// index for a factor with numLevels levels (§4.4). A single column is read
// directly; paired columns are combined big-endian in base a.P. The
// mod-numLevels wrap means lower levels appear more often than higher ones
// whenever numLevels doesn't exactly fill bᵏ — accepted per §4.4.
func decodeLevel(a *taguchi.OrthogonalArray, row, start, count, numLevels int) int {
	if count == 1 {
		return a.Cell(row, start) % numLevels
	}
	raw := 0
	for k := 0; k < count; k++ {
		raw = raw*a.P + a.Cell(row, start+k)
	}
	return raw % numLevels
}
