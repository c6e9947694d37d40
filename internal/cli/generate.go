package cli

import (
	"fmt"
	"io"

	"github.com/bigattichouse/taguchi/design"
	"github.com/bigattichouse/taguchi/jsonio"
)

// Generate implements `generate <file.tgu>` (§6.6): parse the definition,
// produce its runs (auto-selecting an array if none was given), and print
// them as the §6.4 JSON array.
func Generate(path string, out io.Writer) error {
	logger := newLogger()

	def, err := readDefinition(path)
	if err != nil {
		return err
	}

	runs, arrayName, err := design.GenerateRuns(def, def.ArrayName)
	if err != nil {
		logger.Error().Err(err).Msg("generate failed")
		return err
	}
	logger.Info().Str("array", arrayName).Int("runs", len(runs)).Msg("generated runs")

	_, err = fmt.Fprintln(out, string(jsonio.MarshalRuns(runs)))
	return err
}
