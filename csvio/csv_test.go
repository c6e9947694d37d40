package csvio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bigattichouse/taguchi/csvio"
)

func TestLoadSamples_WithHeader(t *testing.T) {
	src := "run_id,response\n1,42.5\n2,38.1\n"
	samples, err := csvio.LoadSamples(src)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	require.Equal(t, 1, samples[0].RunID)
	require.Equal(t, 42.5, samples[0].Response)
	require.Equal(t, 2, samples[1].RunID)
	require.Equal(t, 38.1, samples[1].Response)
}

func TestLoadSamples_NoHeader(t *testing.T) {
	src := "1,42.5\n2,38.1\n"
	samples, err := csvio.LoadSamples(src)
	require.NoError(t, err)
	require.Len(t, samples, 2)
}

func TestLoadSamples_CommentsAndBlankLines(t *testing.T) {
	src := "# results\nrun_id,response\n1,10\n\n2,20\n"
	samples, err := csvio.LoadSamples(src)
	require.NoError(t, err)
	require.Len(t, samples, 2)
}

func TestLoadSamples_MalformedRunID(t *testing.T) {
	src := "run_id,response\nabc,10\n"
	_, err := csvio.LoadSamples(src)
	require.ErrorIs(t, err, csvio.ErrMalformedRow)
}

func TestLoadSamples_MalformedResponse(t *testing.T) {
	src := "run_id,response\n1,notanumber\n"
	_, err := csvio.LoadSamples(src)
	require.ErrorIs(t, err, csvio.ErrMalformedRow)
}

func TestLoadSamples_DuplicateRunIDsPermitted(t *testing.T) {
	src := "1,10\n1,20\n"
	samples, err := csvio.LoadSamples(src)
	require.NoError(t, err)
	require.Len(t, samples, 2)
}
