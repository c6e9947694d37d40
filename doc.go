// Package taguchi implements the data model for designing and analyzing
// Taguchi-style fractional-factorial experiments: factors with discrete
// levels, orthogonal-array-driven run schedules, and the per-factor main
// effects computed from collected responses.
//
// The OA catalog/generator, the array selector, and the run generator live
// in the sibling oa and design packages; this package owns the types they
// share (Factor, ExperimentDefinition, OrthogonalArray, Run, ResultSet,
// MainEffect) along with the result-store behavior (C5) and the
// experiment-definition validation rules.
package taguchi
