package csvio

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/bigattichouse/taguchi"
)

// LoadSamples parses content as the run_id,response CSV format of §6.2
// into a flat list of samples. A leading header row ("run_id,response" or
// any row whose first field isn't a plain positive integer) is detected
// and skipped automatically.
func LoadSamples(content string) ([]taguchi.Sample, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvio: %w", err)
	}

	var samples []taguchi.Sample
	for i, rec := range records {
		if len(rec) < 2 {
			continue
		}
		if i == 0 && !looksLikeRunID(rec[0]) {
			continue // header row
		}
		runID, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil || runID <= 0 {
			return nil, fmt.Errorf("%w: row %d: run_id %q", ErrMalformedRow, i+1, rec[0])
		}
		response, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: response %q", ErrMalformedRow, i+1, rec[1])
		}
		samples = append(samples, taguchi.Sample{RunID: runID, Response: response})
	}
	return samples, nil
}

func looksLikeRunID(field string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	return err == nil && n > 0
}
