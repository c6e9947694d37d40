package taguchi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bigattichouse/taguchi"
)

func TestResultSet_AddAndLookup(t *testing.T) {
	def, err := taguchi.NewExperimentDefinition(threeFactors(), "")
	require.NoError(t, err)

	rs := taguchi.NewResultSet(def, "latency_ms", "L9")
	rs.Add(1, 42.5)
	rs.Add(2, 38.1)
	rs.Add(1, 44.0) // duplicate run_id, treated as a repeat

	require.Len(t, rs.Samples, 3)

	got, ok := rs.Lookup(1)
	require.True(t, ok)
	require.Equal(t, 42.5, got) // Lookup returns the first match

	_, ok = rs.Lookup(99)
	require.False(t, ok)
}

func TestRun_Level(t *testing.T) {
	run := taguchi.Run{
		RunID: 1,
		Values: []taguchi.FactorValue{
			{Factor: "cache_size", Level: "128M"},
			{Factor: "threads", Level: "2"},
		},
	}
	v, ok := run.Level("threads")
	require.True(t, ok)
	require.Equal(t, "2", v)

	_, ok = run.Level("missing")
	require.False(t, ok)
}
