package reaction

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/phasehull/chem"
	"github.com/katalvlaran/phasehull/matrix"
)

// DefaultResidualTolerance bounds the largest per-species fraction
// mismatch a balanced combination may leave behind.
const DefaultResidualTolerance = 1e-6

const panicResidualTolInvalid = "reaction: WithResidualTolerance: tol must be finite, non-negative"

var (
	// ErrNoTerminals indicates an empty terminal composition list.
	ErrNoTerminals = errors.New("reaction: no terminal compositions supplied")
	// ErrDependentTerminals indicates linearly dependent terminals; the
	// normal equations are singular and no unique balance exists.
	ErrDependentTerminals = errors.New("reaction: terminal compositions are linearly dependent")
)

// Option configures a LeastSquares oracle.
type Option func(*LeastSquares)

// WithResidualTolerance overrides DefaultResidualTolerance.
// Panics on NaN/±Inf or negative tol (programmer error).
func WithResidualTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicResidualTolInvalid)
	}

	return func(ls *LeastSquares) { ls.tol = tol }
}

// LeastSquares decides feasibility by solving the normal equations of the
// atomic-fraction balance and checking the residual:
//
//	x = (TᵀT)⁻¹ Tᵀ c,   feasible ⇔ ‖T·x − c‖∞ ≤ tol
//
// where T's columns are the terminals' atomic fractions over the union
// species basis and c is the target's fraction vector.
type LeastSquares struct {
	tol float64
}

// NewLeastSquares builds the oracle with documented defaults.
func NewLeastSquares(opts ...Option) *LeastSquares {
	ls := &LeastSquares{tol: DefaultResidualTolerance}
	for _, opt := range opts {
		opt(ls)
	}

	return ls
}

// Feasible reports whether target balances against terminals within the
// residual tolerance. Errors (no terminals, dependent terminals) count as
// infeasible, mirroring the drop-on-failure filtering the engine expects.
func (ls *LeastSquares) Feasible(terminals []chem.Composition, target chem.Composition) bool {
	_, residual, err := ls.Balance(terminals, target)

	return err == nil && residual <= ls.tol
}

// Balance fits target as a linear combination of terminals over their
// union species basis, returning the coefficients (one per terminal, in
// input order) and the L∞ residual of the fit.
//
// Errors:
//   - ErrNoTerminals.
//   - ErrDependentTerminals — singular Gram matrix.
//
// Determinism:
//   - The species basis is the canonical sorted union; fixed kernel loop
//     orders do the rest.
func (ls *LeastSquares) Balance(terminals []chem.Composition, target chem.Composition) ([]float64, float64, error) {
	if len(terminals) == 0 {
		return nil, 0, ErrNoTerminals
	}

	// Union species basis, canonical order.
	seen := make(map[chem.Species]struct{})
	var basis []chem.Species
	collect := func(c chem.Composition) {
		for _, sp := range c.Species() {
			if _, ok := seen[sp]; ok {
				continue
			}
			seen[sp] = struct{}{}
			basis = append(basis, sp)
		}
	}
	for _, t := range terminals {
		collect(t)
	}
	collect(target)
	chem.SortSpecies(basis)

	// T: one column per terminal; c: target fractions.
	rows := make([][]float64, len(basis))
	c := make([]float64, len(basis))
	for i, sp := range basis {
		row := make([]float64, len(terminals))
		for j, t := range terminals {
			row[j] = t.AtomicFraction(sp)
		}
		rows[i] = row
		c[i] = target.AtomicFraction(sp)
	}
	t, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("reaction: %w", err)
	}
	tt, err := matrix.Transpose(t)
	if err != nil {
		return nil, 0, fmt.Errorf("reaction: %w", err)
	}
	gram, err := matrix.Mul(tt, t)
	if err != nil {
		return nil, 0, fmt.Errorf("reaction: %w", err)
	}
	inv, err := matrix.Inverse(gram)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, 0, ErrDependentTerminals
		}

		return nil, 0, fmt.Errorf("reaction: %w", err)
	}
	rhs, err := matrix.MatVec(tt, c)
	if err != nil {
		return nil, 0, fmt.Errorf("reaction: %w", err)
	}
	coeffs, err := matrix.MatVec(inv, rhs)
	if err != nil {
		return nil, 0, fmt.Errorf("reaction: %w", err)
	}

	// L∞ residual of T·x − c.
	fitted, err := matrix.MatVec(t, coeffs)
	if err != nil {
		return nil, 0, fmt.Errorf("reaction: %w", err)
	}
	var residual float64
	for i := range fitted {
		if r := math.Abs(fitted[i] - c[i]); r > residual {
			residual = r
		}
	}

	return coeffs, residual, nil
}
