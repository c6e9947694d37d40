package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bigattichouse/taguchi"
	"github.com/bigattichouse/taguchi/analysis"
	"github.com/bigattichouse/taguchi/csvio"
)

// loadResultSet reads def and resultsCSVPath and builds the ResultSet
// CalculateMainEffects needs, matching the array the definition names (or
// auto-selecting, exactly as generate/run would have).
func loadResultSet(defPath, resultsCSVPath, metric string) (*taguchi.ResultSet, error) {
	def, err := readDefinition(defPath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(resultsCSVPath)
	if err != nil {
		return nil, fmt.Errorf("cli: reading %s: %w", resultsCSVPath, err)
	}
	samples, err := csvio.LoadSamples(string(content))
	if err != nil {
		return nil, err
	}

	if metric == "" {
		metric = "response"
	}
	rs := taguchi.NewResultSet(def, metric, def.ArrayName)
	rs.Samples = samples
	return rs, nil
}

// Effects implements `effects <file.tgu> <results.csv> [--metric NAME]`
// (§6.6): print the main-effects table only.
func Effects(defPath, resultsCSVPath, metric string, out io.Writer) error {
	logger := newLogger()

	rs, err := loadResultSet(defPath, resultsCSVPath, metric)
	if err != nil {
		logger.Error().Err(err).Msg("effects failed")
		return err
	}
	effects, err := analysis.CalculateMainEffects(rs)
	if err != nil {
		logger.Error().Err(err).Msg("effects failed")
		return err
	}
	printEffectsTable(out, effects)
	return nil
}

// Analyze implements
// `analyze <file.tgu> <results.csv> [--metric NAME] [--minimize]` (§6.6):
// print the effects table followed by the optimal-level recommendation.
func Analyze(defPath, resultsCSVPath, metric string, minimize bool, out io.Writer) error {
	logger := newLogger()

	rs, err := loadResultSet(defPath, resultsCSVPath, metric)
	if err != nil {
		logger.Error().Err(err).Msg("analyze failed")
		return err
	}
	effects, err := analysis.CalculateMainEffects(rs)
	if err != nil {
		logger.Error().Err(err).Msg("analyze failed")
		return err
	}
	printEffectsTable(out, effects)

	recommendation := analysis.Recommend(effects, !minimize)
	fmt.Fprintf(out, "Recommendation: %s\n", recommendation)
	return nil
}
