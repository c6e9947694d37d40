// Package cli implements the command surface of §6.6: generate, run,
// analyze, effects, validate, and list-arrays. Each command reads a .tgu
// definition (and, where relevant, a CSV results file), drives the
// design/analysis packages, and writes a report to stdout.
//
// Logging follows cartographus's pattern in internal/logging: a package
// logger built on github.com/rs/zerolog, with one correlation ID (from
// github.com/google/uuid, truncated for readability) generated per
// command invocation for log correlation only — it is never part of any
// wire format in §6.
package cli
