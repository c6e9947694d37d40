package cli

import (
	"fmt"
	"os"

	"github.com/bigattichouse/taguchi"
	"github.com/bigattichouse/taguchi/parser"
)

// readDefinition reads and parses a .tgu file at path. A read failure is
// an IOError (§7); a malformed file surfaces the *parser.ParseError or
// validation sentinel parser.Parse already produces.
func readDefinition(path string) (*taguchi.ExperimentDefinition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: reading %s: %w", path, err)
	}
	return parser.Parse(string(content))
}
