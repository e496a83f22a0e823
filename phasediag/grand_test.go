package phasediag_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/phasehull/chem"
	"github.com/katalvlaran/phasehull/phasediag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildGrandPotential_OpenC verifies the worked A-B-C example with C
// held at μ=−0.5: the ternary collapses onto the A-B axes, ABC carries
// Φ = −3 − (−0.5) = −2.5 over two closed atoms, the pure C phase drops
// out, and the shifted compound lands on the hull.
func TestBuildGrandPotential_OpenC(t *testing.T) {
	a, b, c := chem.Elem("A"), chem.Elem("B"), chem.Elem("C")
	ea := entry(t, "A", map[chem.Species]float64{a: 1}, -1)
	eb := entry(t, "B", map[chem.Species]float64{b: 1}, -1)
	ec := entry(t, "C", map[chem.Species]float64{c: 1}, -1)
	eabc := entry(t, "ABC", map[chem.Species]float64{a: 1, b: 1, c: 1}, -3)

	pd, err := phasediag.BuildGrandPotential(
		[]chem.Entry{ea, eb, ec, eabc},
		map[chem.Species]float64{c: -0.5},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, 2, pd.Dim(), "open species leaves the basis")
	assert.Equal(t, []chem.Species{a, b}, pd.Elements())
	assert.Len(t, pd.AllEntries(), 3, "the pure open-species phase drops out")

	mus := pd.ChemicalPotentials()
	require.NotNil(t, mus)
	assert.Equal(t, -0.5, mus[c])

	stable := make([]string, 0, 3)
	for _, e := range pd.StableEntries() {
		stable = append(stable, e.Name())
	}
	assert.ElementsMatch(t, []string{"A", "B", "ABC"}, stable)

	// The stable transformed entry still points back at its source.
	for _, e := range pd.StableEntries() {
		ge, ok := e.(*chem.GrandPotentialEntry)
		require.True(t, ok)
		if ge.Name() == "ABC" {
			assert.Same(t, chem.Entry(eabc), ge.Original())
			assert.Equal(t, -2.5, ge.Energy())
		}
	}

	assert.True(t, strings.HasPrefix(pd.String(), "A-B grand potential phase diagram with uC=-0.5"),
		"summary names the open species and potential")
}

// TestBuildGrandPotential_ShiftDestabilizes verifies that the chemical
// potential moves phases off the hull: at μC=−2 the grand potential of
// ABC becomes −3 − 1·(−2) = −1 over two closed atoms, above the A+B tie
// line at −1 per atom, so only the elements stay stable.
func TestBuildGrandPotential_ShiftDestabilizes(t *testing.T) {
	a, b, c := chem.Elem("A"), chem.Elem("B"), chem.Elem("C")
	eabc := entry(t, "ABC", map[chem.Species]float64{a: 1, b: 1, c: 1}, -3)
	input := []chem.Entry{
		entry(t, "A", map[chem.Species]float64{a: 1}, -1),
		entry(t, "B", map[chem.Species]float64{b: 1}, -1),
		eabc,
	}

	pd, err := phasediag.BuildGrandPotential(input, map[chem.Species]float64{c: -2}, nil)
	require.NoError(t, err)

	stable := make([]string, 0, 2)
	for _, e := range pd.StableEntries() {
		stable = append(stable, e.Name())
	}
	assert.ElementsMatch(t, []string{"A", "B"}, stable)
	assert.Len(t, pd.UnstableEntries(), 1)
}

// TestBuildGrandPotential_Errors covers the dedicated sentinels.
func TestBuildGrandPotential_Errors(t *testing.T) {
	a := chem.Elem("A")
	ea := entry(t, "A", map[chem.Species]float64{a: 1}, -1)

	_, err := phasediag.BuildGrandPotential([]chem.Entry{ea}, nil, nil)
	assert.ErrorIs(t, err, phasediag.ErrNoChemPots)

	_, err = phasediag.BuildGrandPotential(nil, map[chem.Species]float64{a: -0.5}, nil)
	assert.ErrorIs(t, err, phasediag.ErrNoEntries)

	// Every species open: no closed subspace remains.
	_, err = phasediag.BuildGrandPotential([]chem.Entry{ea}, map[chem.Species]float64{a: -0.5}, nil)
	assert.ErrorIs(t, err, phasediag.ErrAllOpen)
}
