package chem_test

import (
	"testing"

	"github.com/katalvlaran/phasehull/chem"
	"github.com/stretchr/testify/assert"
)

// TestSpecies_ElemBasics verifies accessors of a real element species.
func TestSpecies_ElemBasics(t *testing.T) {
	fe := chem.Elem("Fe")

	assert.False(t, fe.IsAxis(), "element must not be an axis")
	assert.Equal(t, "Fe", fe.Symbol())
	assert.Equal(t, 0, fe.AxisIndex(), "element axis index must be 0")
	assert.Equal(t, "Fe", fe.String())
}

// TestSpecies_AxisBasics verifies accessors of a synthetic axis species.
func TestSpecies_AxisBasics(t *testing.T) {
	x2 := chem.Axis(2)

	assert.True(t, x2.IsAxis())
	assert.Equal(t, "", x2.Symbol(), "axis has no element symbol")
	assert.Equal(t, 2, x2.AxisIndex())
	assert.Equal(t, "X2", x2.String())
}

// TestSpecies_Panics ensures Elem and Axis panic on programmer errors.
func TestSpecies_Panics(t *testing.T) {
	assert.Panics(t, func() { chem.Elem("") }, "empty symbol must panic")
	assert.Panics(t, func() { chem.Axis(0) }, "axis index < 1 must panic")
}

// TestSpecies_Comparable verifies Species works as a map key and that the
// same constructor arguments produce equal values.
func TestSpecies_Comparable(t *testing.T) {
	m := map[chem.Species]int{chem.Elem("O"): 1, chem.Axis(1): 2}

	assert.Equal(t, 1, m[chem.Elem("O")])
	assert.Equal(t, 2, m[chem.Axis(1)])
}

// TestSortSpecies verifies the canonical total order: elements
// lexicographically by symbol, every axis after every element, axes by
// ascending index.
func TestSortSpecies(t *testing.T) {
	got := []chem.Species{
		chem.Axis(2),
		chem.Elem("O"),
		chem.Axis(1),
		chem.Elem("Fe"),
		chem.Elem("Li"),
	}
	chem.SortSpecies(got)

	want := []chem.Species{
		chem.Elem("Fe"),
		chem.Elem("Li"),
		chem.Elem("O"),
		chem.Axis(1),
		chem.Axis(2),
	}
	assert.Equal(t, want, got)
}
