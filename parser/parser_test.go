package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bigattichouse/taguchi"
	"github.com/bigattichouse/taguchi/parser"
)

func TestParse_Basic(t *testing.T) {
	src := `
factors:
  cache_size: 64M, 128M, 256M
  threads: 1, 2, 4
array: L9
`
	def, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, def.Factors, 2)
	require.Equal(t, "cache_size", def.Factors[0].Name)
	require.Equal(t, []string{"64M", "128M", "256M"}, def.Factors[0].Levels)
	require.Equal(t, "threads", def.Factors[1].Name)
	require.Equal(t, []string{"1", "2", "4"}, def.Factors[1].Levels)
	require.Equal(t, "L9", def.ArrayName)
}

func TestParse_AutoSelectNoArrayLine(t *testing.T) {
	src := `
factors:
  a: x, y
`
	def, err := parser.Parse(src)
	require.NoError(t, err)
	require.Equal(t, "", def.ArrayName)
}

func TestParse_CommentsAndBlankLinesIgnored(t *testing.T) {
	src := `
# a comment
factors:
  # another comment
  a: x, y

  b: p, q
`
	def, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, def.Factors, 2)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	src := "factors:\n  a:  x ,  y  , z \n"
	def, err := parser.Parse(src)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y", "z"}, def.Factors[0].Levels)
}

func TestParse_UnindentedFactorLineIgnored(t *testing.T) {
	src := "factors:\na: x, y\n"
	_, err := parser.Parse(src)
	require.Error(t, err) // no factors were picked up -> ErrNoFactors
	require.ErrorIs(t, err, taguchi.ErrNoFactors)
}

func TestParse_MissingColon(t *testing.T) {
	src := "factors:\n  a no colon here\n"
	_, err := parser.Parse(src)
	require.Error(t, err)
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Line)
}

func TestParse_EmptyFactorName(t *testing.T) {
	src := "factors:\n  : x, y\n"
	_, err := parser.Parse(src)
	require.Error(t, err)
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParse_NoLevelsAfterColon(t *testing.T) {
	src := "factors:\n  a: , ,\n"
	_, err := parser.Parse(src)
	require.Error(t, err)
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParse_NoFactorsSection(t *testing.T) {
	_, err := parser.Parse("array: L9\n")
	require.ErrorIs(t, err, taguchi.ErrNoFactors)
}
