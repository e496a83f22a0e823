package chem_test

import (
	"testing"

	"github.com/katalvlaran/phasehull/chem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPDEntry_Basics verifies the plain entry accessors.
func TestPDEntry_Basics(t *testing.T) {
	comp := chem.MustComposition(map[chem.Species]float64{
		chem.Elem("A"): 1,
		chem.Elem("B"): 1,
	})
	e := chem.NewEntry("AB", comp, -3)

	assert.Equal(t, "AB", e.Name())
	assert.Equal(t, -3.0, e.Energy())
	assert.InDelta(t, -1.5, e.EnergyPerAtom(), 1e-12)
	assert.Equal(t, comp, e.Composition())
}

// TestNewGrandPotentialEntry verifies the open-species energy shift and
// the restriction of the composition to closed species:
//
//	Φ(ABC, μC=−0.5) = −3 − 1·(−0.5) = −2.5 over A1B1 (2 closed atoms).
func TestNewGrandPotentialEntry(t *testing.T) {
	a, b, c := chem.Elem("A"), chem.Elem("B"), chem.Elem("C")
	abc := chem.NewEntry("ABC", chem.MustComposition(map[chem.Species]float64{a: 1, b: 1, c: 1}), -3)

	ge, err := chem.NewGrandPotentialEntry(abc, map[chem.Species]float64{c: -0.5})
	require.NoError(t, err)

	assert.Equal(t, -2.5, ge.Energy())
	assert.InDelta(t, -1.25, ge.EnergyPerAtom(), 1e-12)
	assert.Equal(t, 0.0, ge.Composition().Amount(c), "open species must vanish")
	assert.Equal(t, 2.0, ge.Composition().NumAtoms())
	assert.Equal(t, "ABC", ge.Name(), "name delegates to the original entry")
	assert.Same(t, abc, ge.Original())
}

// TestNewGrandPotentialEntry_Errors covers the nil-entry and all-open
// sentinels.
func TestNewGrandPotentialEntry_Errors(t *testing.T) {
	c := chem.Elem("C")

	_, err := chem.NewGrandPotentialEntry(nil, map[chem.Species]float64{c: -0.5})
	assert.ErrorIs(t, err, chem.ErrNilEntry)

	pure := chem.NewEntry("C", chem.MustComposition(map[chem.Species]float64{c: 1}), -1)
	_, err = chem.NewGrandPotentialEntry(pure, map[chem.Species]float64{c: -0.5})
	assert.ErrorIs(t, err, chem.ErrEmptyComposition, "pure open-species entry has no closed remainder")
}

// TestNewTransformedEntry verifies the axis-space wrapper delegates name
// and identity to the original while carrying its own coordinates.
func TestNewTransformedEntry(t *testing.T) {
	ab := chem.NewEntry("AB", chem.MustComposition(map[chem.Species]float64{
		chem.Elem("A"): 1,
		chem.Elem("B"): 1,
	}), -5)
	comp := chem.MustComposition(map[chem.Species]float64{
		chem.Axis(1): 0.5,
		chem.Axis(2): 0.5,
	})

	te, err := chem.NewTransformedEntry(ab, comp, -0.5)
	require.NoError(t, err)

	assert.Equal(t, -0.5, te.Energy())
	assert.InDelta(t, -0.5, te.EnergyPerAtom(), 1e-12, "one reprojected atom in total")
	assert.Equal(t, "AB", te.Name())
	assert.Same(t, ab, te.Original())

	_, err = chem.NewTransformedEntry(nil, comp, 0)
	assert.ErrorIs(t, err, chem.ErrNilEntry)
}
