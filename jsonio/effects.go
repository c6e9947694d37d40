package jsonio

import (
	goccyjson "github.com/goccy/go-json"

	"github.com/bigattichouse/taguchi"
)

// effectDoc is the §6.5 wire shape for one factor's main effect. Field
// order matches §6.5's example object exactly.
type effectDoc struct {
	Factor     string    `json:"factor"`
	Range      float64   `json:"range"`
	LevelMeans []float64 `json:"level_means"`
}

// MarshalEffects renders effects as the §6.5 wire format. Unlike runs,
// effects have a fixed schema, so the fast drop-in encoder goccy/go-json
// (already in the module's dependency stack) handles it directly.
func MarshalEffects(effects []taguchi.MainEffect) ([]byte, error) {
	docs := make([]effectDoc, len(effects))
	for i, e := range effects {
		docs[i] = effectDoc{Factor: e.Factor, Range: e.Range, LevelMeans: e.LevelMeans}
	}
	return goccyjson.Marshal(docs)
}
