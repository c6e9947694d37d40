package taguchi

// Sample is one (run_id, response) observation. No uniqueness constraint is
// placed on RunID — duplicates are treated as repeats of the same run and
// averaged by the analysis package.
type Sample struct {
	RunID    int
	Response float64
}

// ResultSet is an append-only collection of Samples for one metric,
// produced against one ExperimentDefinition (C5). Def is a non-owning
// back-reference: a ResultSet must not outlive the ExperimentDefinition it
// was created against (§5, §9). ArrayName records which orthogonal array
// the schedule used, so the analyzer can deterministically reconstruct the
// same runs without re-running array selection.
type ResultSet struct {
	Def       *ExperimentDefinition
	Metric    string
	ArrayName string
	Samples   []Sample
}

// NewResultSet creates an empty result set bound to def and arrayName (the
// array actually used to generate def's schedule, whether chosen
// explicitly or by auto-selection).
func NewResultSet(def *ExperimentDefinition, metric, arrayName string) *ResultSet {
	return &ResultSet{
		Def:       def,
		Metric:    metric,
		ArrayName: arrayName,
	}
}

// Add appends a (run_id, response) sample. Amortised O(1); duplicate run
// IDs are permitted and treated as repeat measurements.
func (rs *ResultSet) Add(runID int, response float64) {
	rs.Samples = append(rs.Samples, Sample{RunID: runID, Response: response})
}

// Lookup returns the first response recorded for runID, for diagnostics
// only — it is never used by the main-effects analyzer, which averages all
// matching samples instead.
func (rs *ResultSet) Lookup(runID int) (float64, bool) {
	for _, s := range rs.Samples {
		if s.RunID == runID {
			return s.Response, true
		}
	}
	return 0, false
}
