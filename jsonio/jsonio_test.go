package jsonio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bigattichouse/taguchi"
	"github.com/bigattichouse/taguchi/jsonio"
)

func TestMarshalRuns_PreservesFactorOrder(t *testing.T) {
	runs := []taguchi.Run{
		{RunID: 1, Values: []taguchi.FactorValue{
			{Factor: "threads", Level: "4"},
			{Factor: "cache_size", Level: "64M"},
		}},
	}
	got := string(jsonio.MarshalRuns(runs))
	require.Equal(t, `[{"run_id":1,"threads":"4","cache_size":"64M"}]`, got)
}

func TestMarshalRuns_EscapesSpecialCharacters(t *testing.T) {
	runs := []taguchi.Run{
		{RunID: 1, Values: []taguchi.FactorValue{
			{Factor: "path", Level: "a\"b\\c\nd\te"},
		}},
	}
	got := string(jsonio.MarshalRuns(runs))
	require.Equal(t, `[{"run_id":1,"path":"a\"b\\c\nd\te"}]`, got)
}

func TestMarshalRuns_Empty(t *testing.T) {
	got := string(jsonio.MarshalRuns(nil))
	require.Equal(t, `[]`, got)
}

func TestMarshalEffects(t *testing.T) {
	effects := []taguchi.MainEffect{
		{Factor: "A", LevelMeans: []float64{10, 20, 30}, Range: 20},
	}
	got, err := jsonio.MarshalEffects(effects)
	require.NoError(t, err)
	require.JSONEq(t, `[{"factor":"A","range":20,"level_means":[10,20,30]}]`, string(got))
}
