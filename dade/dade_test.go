package dade_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/serpentine/dade"
)

const sample = `# chr1 chr2 chr3
chr1 10 2 3
chr2 20 4
chr3 30
`

// TestParse_Symmetrizes checks the upper triangle is read and mirrored
// with a single-counted diagonal.
func TestParse_Symmetrizes(t *testing.T) {
	m, err := dade.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	want := mat.NewDense(3, 3, []float64{
		10, 2, 3,
		2, 20, 4,
		3, 4, 30,
	})
	assert.True(t, mat.Equal(want, m), "parsed matrix = %v", mat.Formatted(m))
}

// TestParse_ShortRows: missing trailing values stay zero and blank lines
// are skipped.
func TestParse_ShortRows(t *testing.T) {
	in := "# a b c\n\nr1 1\nr2 5\n"
	m, err := dade.Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 5.0, m.At(1, 1))
	assert.Zero(t, m.At(0, 2))
	assert.Zero(t, m.At(2, 2))
}

// TestParse_Errors covers the malformed-input cases.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"NoHeader", "", dade.ErrEmptyHeader},
		{"HeaderWithoutLabels", "#\n", dade.ErrEmptyHeader},
		{"TooManyRows", "# a\nr1 1\nr2 2\n", dade.ErrTooManyRows},
		{"RowOverflow", "# a b\nr1 1 2\nr2 3 4\n", dade.ErrRowOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dade.Parse(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := dade.Parse(strings.NewReader("# a b\nr1 1 oops\n"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, dade.ErrRowOverflow), "bad value must surface the strconv error")
	assert.Contains(t, err.Error(), "row 0")
}

// TestLoad_MissingFile propagates the filesystem error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := dade.Load("definitely/not/here.mat")
	assert.Error(t, err)
}
