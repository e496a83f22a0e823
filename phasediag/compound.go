package phasediag

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/phasehull/chem"
	"github.com/katalvlaran/phasehull/matrix"
)

// ReactionOracle decides whether a target composition can be reached
// from the terminal compositions alone. The reaction package ships
// LeastSquares, a concrete implementation; tests may inject stubs.
type ReactionOracle interface {
	Feasible(terminals []chem.Composition, target chem.Composition) bool
}

// BuildCompound constructs a phase diagram whose axes are compound
// terminal compositions instead of elements. Entries unreachable from
// the terminals (per the oracle) are dropped; the rest are reprojected
// onto synthetic Axis species, one per basis row, and the reprojected
// entries go through the ordinary Build pipeline.
//
// Implementation:
//   - Stage 1: oracle filter over the entries.
//   - Stage 2: find the largest non-coplanar species subset over the
//     surviving entries; it fixes the reprojection dimensionality.
//   - Stage 3: pick basis rows (per species axis, the surviving entry
//     with the maximal fraction of that species), invert the transposed
//     basis, reproject every entry, rescale its energy against the basis
//     entries, and Build over the synthetic axes.
//
// Entries whose reprojection leaves the simplex (a negative coordinate
// after rounding) are outside the compound space and dropped.
//
// Errors:
//   - ErrNilOracle, ErrNoTerminals, ErrNoEntries.
//   - ErrDegenerateBasis — no non-coplanar species subset at any size.
//   - ErrSingularBasis — the basis matrix has no inverse.
//   - anything Build returns.
func BuildCompound(entries []chem.Entry, terminals []chem.Composition, oracle ReactionOracle, opts ...Option) (*PhaseDiagram, error) {
	o := gatherOptions(opts...)
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if len(terminals) == 0 {
		return nil, ErrNoTerminals
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	feasible := make([]chem.Entry, 0, len(entries))
	for _, e := range entries {
		if oracle.Feasible(terminals, e.Composition()) {
			feasible = append(feasible, e)
		}
	}
	if len(feasible) == 0 {
		return nil, ErrNoEntries
	}

	comps := make([]chem.Composition, len(feasible))
	for i, e := range feasible {
		comps[i] = e.Composition()
	}
	subset, err := nonCoplanarSpeciesSet(comps, o.coplanarTol)
	if err != nil {
		return nil, err
	}

	transformed, err := transformEntries(feasible, subset, o.roundDigits)
	if err != nil {
		return nil, err
	}
	if len(transformed) == 0 {
		return nil, ErrNoEntries
	}

	return Build(transformed, nil, opts...)
}

// nonCoplanarSpeciesSet searches the compositions' species for the
// largest subset whose normalized composition rows are not coplanar,
// scanning sizes from the full set down to one and subsets in
// lexicographic order (first hit wins, deterministically). Subsets that
// leave some composition with an empty row are skipped.
func nonCoplanarSpeciesSet(comps []chem.Composition, tol float64) ([]chem.Species, error) {
	species := allSpecies(comps)
	for size := len(species); size >= 1; size-- {
		found := []chem.Species(nil)
		forEachCombination(len(species), size, func(idx []int) bool {
			subset := make([]chem.Species, size)
			for i, j := range idx {
				subset[i] = species[j]
			}
			rows, err := compositionMatrix(comps, subset, true)
			if err != nil {
				return true // some composition misses the subset entirely
			}
			if isCoplanar(rows, size, tol) {
				return true
			}
			found = subset

			return false
		})
		if found != nil {
			return found, nil
		}
	}

	return nil, ErrDegenerateBasis
}

// isCoplanar reports whether every k-row square submatrix of rows has a
// determinant within tolerance. Fewer than k rows cannot span k
// dimensions, hence coplanar.
func isCoplanar(rows [][]float64, k int, tol float64) bool {
	if len(rows) < k {
		return true
	}
	coplanar := true
	forEachCombination(len(rows), k, func(idx []int) bool {
		sub := make([][]float64, k)
		for i, j := range idx {
			sub[i] = rows[j]
		}
		m, err := matrix.NewDenseFromRows(sub)
		if err != nil {
			return true
		}
		det, err := matrix.Det(m)
		if err != nil {
			return true
		}
		if math.Abs(det) > tol {
			coplanar = false

			return false
		}

		return true
	})

	return coplanar
}

// transformEntries reprojects entries onto synthetic Axis species over
// the non-coplanar subset and rescales their energies against the basis
// entries.
func transformEntries(entries []chem.Entry, subset []chem.Species, digits int) ([]chem.Entry, error) {
	comps := make([]chem.Composition, len(entries))
	for i, e := range entries {
		comps[i] = e.Composition()
	}
	rows, err := compositionMatrix(comps, subset, true)
	if err != nil {
		return nil, err
	}

	// Basis row per axis: the entry with the maximal fraction of that
	// species (first-max wins). Its energy per atom anchors the rescale.
	dim := len(subset)
	basisRows := make([][]float64, dim)
	basisEnergies := make([]float64, dim)
	for j := 0; j < dim; j++ {
		maxind := 0
		for i := 1; i < len(rows); i++ {
			if rows[i][j] > rows[maxind][j] {
				maxind = i
			}
		}
		basisRows[j] = rows[maxind]
		basisEnergies[j] = entries[maxind].EnergyPerAtom()
	}

	basis, err := matrix.NewDenseFromRows(basisRows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularBasis, err)
	}
	basisT, err := matrix.Transpose(basis)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularBasis, err)
	}
	inv, err := matrix.Inverse(basisT)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%w: %w", ErrSingularBasis, err)
		}

		return nil, err
	}

	scale := math.Pow(10, float64(digits))
	out := make([]chem.Entry, 0, len(entries))
	for i, e := range entries {
		coords, err := matrix.MatVec(inv, rows[i])
		if err != nil {
			return nil, err
		}
		amounts := make(map[chem.Species]float64, dim)
		outside := false
		for j, v := range coords {
			v = math.Round(v*scale) / scale
			if v < 0 {
				// Reachable per the oracle but outside the basis simplex.
				outside = true

				break
			}
			if v > 0 {
				amounts[chem.Axis(j+1)] = v
			}
			coords[j] = v
		}
		if outside || len(amounts) == 0 {
			continue
		}
		comp, err := chem.NewComposition(amounts)
		if err != nil {
			return nil, err
		}
		energy := e.EnergyPerAtom()
		for j, v := range coords {
			energy -= v * basisEnergies[j]
		}
		te, err := chem.NewTransformedEntry(e, comp, energy)
		if err != nil {
			return nil, err
		}
		out = append(out, te)
	}

	return out, nil
}

// allSpecies collects the distinct species over the compositions, in
// canonical order.
func allSpecies(comps []chem.Composition) []chem.Species {
	seen := make(map[chem.Species]struct{})
	var out []chem.Species
	for _, t := range comps {
		for _, sp := range t.Species() {
			if _, ok := seen[sp]; ok {
				continue
			}
			seen[sp] = struct{}{}
			out = append(out, sp)
		}
	}
	chem.SortSpecies(out)

	return out
}

// forEachCombination visits the k-subsets of {0..n-1} in lexicographic
// order, calling visit with a reused index slice; visit returns false to
// stop early.
func forEachCombination(n, k int, visit func(idx []int) bool) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !visit(idx) {
			return
		}
		// Advance to the next combination.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
