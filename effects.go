package taguchi

// MainEffect is the analyzed contribution of a single factor: its
// per-level mean response (indexed in the factor's declared level order)
// and the range (max − min) of those means.
type MainEffect struct {
	Factor     string
	LevelMeans []float64
	Range      float64
}
