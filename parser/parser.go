package parser

import (
	"bufio"
	"strings"

	"github.com/bigattichouse/taguchi"
)

// Parse reads a .tgu definition from content and returns the resulting
// ExperimentDefinition (§6.1). Structural problems in the text (a factor
// line with no colon, an empty factor name) surface as *ParseError with
// the offending line number; factor-count, level-count and over-long
// string problems are left to taguchi.NewExperimentDefinition's own
// validation (§7 distinguishes ParseError from ValidationError).
func Parse(content string) (*taguchi.ExperimentDefinition, error) {
	var factors []taguchi.Factor
	arrayName := ""
	inFactors := false

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		switch {
		case trimmed == "factors:":
			inFactors = true
		case strings.HasPrefix(trimmed, "array:"):
			inFactors = false
			arrayName = strings.TrimSpace(strings.TrimPrefix(trimmed, "array:"))
		case inFactors && isIndented(raw):
			f, err := parseFactorLine(lineNum, trimmed)
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
		}
	}

	return taguchi.NewExperimentDefinition(factors, arrayName)
}

func isIndented(raw string) bool {
	return len(raw) > 0 && (raw[0] == ' ' || raw[0] == '\t')
}

// parseFactorLine parses "<name>: <value>, <value>, ..." (§6.1), trimming
// whitespace from the name and every level value and silently dropping
// empty tokens produced by trailing/doubled commas.
func parseFactorLine(lineNum int, line string) (taguchi.Factor, error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return taguchi.Factor{}, newParseError(lineNum, "expected ':' after factor name")
	}

	name := strings.TrimSpace(line[:colon])
	if name == "" {
		return taguchi.Factor{}, newParseError(lineNum, "empty factor name")
	}

	var levels []string
	for _, tok := range strings.Split(line[colon+1:], ",") {
		trimmed := strings.TrimSpace(tok)
		if trimmed == "" {
			continue
		}
		levels = append(levels, trimmed)
	}
	if len(levels) == 0 {
		return taguchi.Factor{}, newParseError(lineNum, "no factor levels found after ':' for %q", name)
	}

	return taguchi.Factor{Name: name, Levels: levels}, nil
}
