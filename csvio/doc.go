// Package csvio loads run results from the CSV format of §6.2: an
// optional "run_id,response" header, "#" comments, blank lines ignored,
// run_id a positive integer and response an IEEE-754 double.
//
// No library in the example corpus covers CSV parsing, so this uses the
// standard library's encoding/csv (see DESIGN.md).
package csvio
