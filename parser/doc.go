// Package parser reads the .tgu definition file format (§6.1): a
// "factors:" block of indented "<name>: <value>, <value>, ..." lines,
// followed by an optional "array: L9" line. Blank lines and "#" comments
// are ignored.
//
// Grounded on original_source/src/lib/parser.c's line-oriented,
// indentation-sensitive scan (trim_whitespace, split_string,
// parse_factor_line), reworked to report ParseError with line numbers
// instead of writing into a caller-supplied error buffer.
package parser
