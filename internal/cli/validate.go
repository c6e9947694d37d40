package cli

import (
	"fmt"
	"io"

	"github.com/bigattichouse/taguchi/design"
	"github.com/bigattichouse/taguchi/oa"
)

// Validate implements `validate <file.tgu>` (§6.6): report whether the
// file parses and validates, without generating runs. Beyond pass/fail it
// resolves the array the file would run against (auto-selecting one if the
// file didn't name one) and reports its margin, the same diagnostic
// `generate` would surface, before the user commits to a full run.
func Validate(path string, out io.Writer) error {
	logger := newLogger()

	def, err := readDefinition(path)
	if err != nil {
		logger.Error().Err(err).Msg("validate failed")
		return err
	}

	arrayName := def.ArrayName
	if arrayName == "" {
		arrayName, err = design.SelectArray(def)
		if err != nil {
			logger.Error().Err(err).Msg("validate failed")
			return err
		}
	}

	_, cols, base, ok := oa.Info(arrayName)
	if !ok {
		err := fmt.Errorf("%w: %s", design.ErrUnknownArray, arrayName)
		logger.Error().Err(err).Msg("validate failed")
		return err
	}
	needed := design.TotalColumns(def, base)
	marginPct := (cols - needed) * 100 / needed

	fmt.Fprintf(out, "Valid .tgu file: %s (%d factors)\n", path, len(def.Factors))
	fmt.Fprintf(out, "Array: %s (margin %d%%)\n", arrayName, marginPct)
	return nil
}
