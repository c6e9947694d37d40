package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bigattichouse/taguchi/internal/cli"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleDef = `
factors:
  A: a1, a2, a3
  B: b1, b2, b3
array: L9
`

func TestGenerate_WritesJSONRuns(t *testing.T) {
	path := writeTemp(t, "exp.tgu", sampleDef)
	var buf bytes.Buffer
	require.NoError(t, cli.Generate(path, &buf))
	require.Contains(t, buf.String(), `"run_id":1`)
	require.Contains(t, buf.String(), `"A":"a1"`)
}

func TestValidate_Valid(t *testing.T) {
	path := writeTemp(t, "exp.tgu", sampleDef)
	var buf bytes.Buffer
	require.NoError(t, cli.Validate(path, &buf))
	require.Contains(t, buf.String(), "Valid .tgu file")
	require.Contains(t, buf.String(), "Array: L9 (margin")
}

func TestValidate_Invalid(t *testing.T) {
	path := writeTemp(t, "exp.tgu", "array: L9\n")
	var buf bytes.Buffer
	require.Error(t, cli.Validate(path, &buf))
}

func TestListArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cli.ListArrays(&buf))
	require.Contains(t, buf.String(), "L9")
	require.Contains(t, buf.String(), "L3125")
}

func TestEffects_TableOutput(t *testing.T) {
	defPath := writeTemp(t, "exp.tgu", sampleDef)
	csvPath := writeTemp(t, "results.csv", "run_id,response\n1,10\n2,20\n3,30\n4,10\n5,20\n6,30\n7,10\n8,20\n9,30\n")

	var buf bytes.Buffer
	require.NoError(t, cli.Effects(defPath, csvPath, "yield", &buf))
	require.Contains(t, buf.String(), "Main effects:")
	require.Contains(t, buf.String(), "A:")
}

func TestAnalyze_IncludesRecommendation(t *testing.T) {
	defPath := writeTemp(t, "exp.tgu", sampleDef)
	csvPath := writeTemp(t, "results.csv", "run_id,response\n1,10\n2,20\n3,30\n4,10\n5,20\n6,30\n7,10\n8,20\n9,30\n")

	var buf bytes.Buffer
	require.NoError(t, cli.Analyze(defPath, csvPath, "yield", false, &buf))
	require.Contains(t, buf.String(), "Recommendation:")
}

func TestRun_ExecutesOncePerRun(t *testing.T) {
	path := writeTemp(t, "exp.tgu", sampleDef)
	var buf bytes.Buffer
	require.NoError(t, cli.Run(path, "echo $TAGUCHI_RUN_ID $TAGUCHI_A $TAGUCHI_B", &buf))
	require.Equal(t, 9, bytes.Count(buf.Bytes(), []byte("exit 0")))
}
