package hull_test

import (
	"testing"

	"github.com/katalvlaran/phasehull/hull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseIndexOutput_Valid verifies parsing of a well-formed "i" dump:
// a facet count line followed by index tuples.
func TestParseIndexOutput_Valid(t *testing.T) {
	out := []byte("2\n0 1\n1 2\n")

	facets, err := hull.ParseIndexOutputForTest(out, 3)
	require.NoError(t, err)
	assert.Equal(t, []hull.Facet{{0, 1}, {1, 2}}, facets)
}

// TestParseIndexOutput_Malformed covers the malformed-output sentinels:
// empty dump, non-numeric count, zero facets, token-count mismatch, and
// out-of-range vertex indices.
func TestParseIndexOutput_Malformed(t *testing.T) {
	cases := []struct {
		name string
		out  string
	}{
		{"empty", ""},
		{"bad_count", "x\n0 1\n"},
		{"zero_facets", "0\n"},
		{"token_mismatch", "2\n0 1 2\n"},
		{"index_out_of_range", "1\n0 9\n"},
		{"negative_index", "1\n0 -1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hull.ParseIndexOutputForTest([]byte(tc.out), 3)
			assert.ErrorIs(t, err, hull.ErrMalformedOutput)
		})
	}
}

// TestQconvex_MissingBinary verifies that an unresolvable executable path
// surfaces as ErrExternalTool.
func TestQconvex_MissingBinary(t *testing.T) {
	q := hull.NewQconvex("/nonexistent/qconvex-binary")

	_, err := q.Hull([][]float64{{0, 0}, {1, 0}, {0, 1}})
	assert.ErrorIs(t, err, hull.ErrExternalTool)
}

// TestQconvex_InputContract verifies validation happens before any
// subprocess is spawned.
func TestQconvex_InputContract(t *testing.T) {
	q := hull.NewQconvex("/nonexistent/qconvex-binary")

	_, err := q.Hull(nil)
	assert.ErrorIs(t, err, hull.ErrBadDimension)

	_, err = q.Hull([][]float64{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, hull.ErrTooFewPoints)
}
