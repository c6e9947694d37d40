// Package design turns a validated taguchi.ExperimentDefinition into a
// concrete experiment schedule: how many OA columns each factor needs
// (C2), which catalog array best fits the factor set (C3), and the
// ordered list of runs produced by decoding that array's cells back into
// factor levels (C4).
//
// The algorithms here are grounded on original_source/src/lib/generator.c
// (get_suggested_array_for_factors, generate_experiments), reworked for
// the string-level factor model in the root taguchi package and for the
// canonical column ordering oa.Lookup produces.
package design
