package reaction_test

import (
	"testing"

	"github.com/katalvlaran/phasehull/chem"
	"github.com/katalvlaran/phasehull/reaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comp(t *testing.T, amounts map[chem.Species]float64) chem.Composition {
	t.Helper()
	c, err := chem.NewComposition(amounts)
	require.NoError(t, err)

	return c
}

// TestBalance_ExactFit verifies the balanced coefficients of
// AB = 0.5·A + 0.5·B with a zero residual.
func TestBalance_ExactFit(t *testing.T) {
	a, b := chem.Elem("A"), chem.Elem("B")
	terminals := []chem.Composition{
		comp(t, map[chem.Species]float64{a: 1}),
		comp(t, map[chem.Species]float64{b: 1}),
	}
	target := comp(t, map[chem.Species]float64{a: 1, b: 1})

	coeffs, residual, err := reaction.NewLeastSquares().Balance(terminals, target)
	require.NoError(t, err)

	require.Len(t, coeffs, 2)
	assert.InDelta(t, 0.5, coeffs[0], 1e-9)
	assert.InDelta(t, 0.5, coeffs[1], 1e-9)
	assert.InDelta(t, 0.0, residual, 1e-9)
}

// TestBalance_SkewedFit verifies A2B balances as 2/3·A + 1/3·B in atomic
// fractions.
func TestBalance_SkewedFit(t *testing.T) {
	a, b := chem.Elem("A"), chem.Elem("B")
	terminals := []chem.Composition{
		comp(t, map[chem.Species]float64{a: 1}),
		comp(t, map[chem.Species]float64{b: 1}),
	}
	target := comp(t, map[chem.Species]float64{a: 2, b: 1})

	coeffs, residual, err := reaction.NewLeastSquares().Balance(terminals, target)
	require.NoError(t, err)

	assert.InDelta(t, 2.0/3.0, coeffs[0], 1e-9)
	assert.InDelta(t, 1.0/3.0, coeffs[1], 1e-9)
	assert.InDelta(t, 0.0, residual, 1e-9)
}

// TestFeasible verifies the oracle's verdicts: a spanned target passes,
// a target with a foreign species fails.
func TestFeasible(t *testing.T) {
	a, b, c := chem.Elem("A"), chem.Elem("B"), chem.Elem("C")
	terminals := []chem.Composition{
		comp(t, map[chem.Species]float64{a: 2, b: 1}),
		comp(t, map[chem.Species]float64{a: 1, b: 2}),
	}
	ls := reaction.NewLeastSquares()

	assert.True(t, ls.Feasible(terminals, comp(t, map[chem.Species]float64{a: 1, b: 1})),
		"AB is the midpoint of A2B and AB2")
	assert.False(t, ls.Feasible(terminals, comp(t, map[chem.Species]float64{c: 1})),
		"pure C shares nothing with the terminals")
}

// TestBalance_DependentTerminals verifies that two terminals with the
// same atomic fractions make the normal equations singular.
func TestBalance_DependentTerminals(t *testing.T) {
	a := chem.Elem("A")
	terminals := []chem.Composition{
		comp(t, map[chem.Species]float64{a: 1}),
		comp(t, map[chem.Species]float64{a: 2}),
	}
	target := comp(t, map[chem.Species]float64{a: 1})

	_, _, err := reaction.NewLeastSquares().Balance(terminals, target)
	assert.ErrorIs(t, err, reaction.ErrDependentTerminals)
	assert.False(t, reaction.NewLeastSquares().Feasible(terminals, target),
		"errors count as infeasible")
}

// TestBalance_NoTerminals verifies the empty-terminal sentinel.
func TestBalance_NoTerminals(t *testing.T) {
	target := comp(t, map[chem.Species]float64{chem.Elem("A"): 1})

	_, _, err := reaction.NewLeastSquares().Balance(nil, target)
	assert.ErrorIs(t, err, reaction.ErrNoTerminals)
}

// TestWithResidualTolerance_Panics ensures invalid tolerances panic.
func TestWithResidualTolerance_Panics(t *testing.T) {
	assert.Panics(t, func() { reaction.WithResidualTolerance(-1) })
}
