// Package analysis computes main effects from a ResultSet and recommends
// optimal factor levels from those effects (C6, C7). It reconstructs the
// run schedule deterministically from the ResultSet's back-referenced
// ExperimentDefinition rather than trusting any stored schedule, matching
// runs by level-value string rather than index so reordering factors
// never misattributes a response.
//
// Grounded on original_source/src/lib/analyzer.c, corrected per spec.md
// §9's noted bug: the earlier analyzer used (run_id-1) mod L as a fake
// level mapping instead of reconstructing the real schedule.
package analysis
