package phasediag

import (
	"fmt"

	"github.com/katalvlaran/phasehull/chem"
)

// compositionMatrix builds one atomic-fraction row per composition over
// the given species basis. With normalize=true each row is divided by its
// own sum — the defense for bases that do not span the full composition
// space (e.g. after dimensionality reduction). A zero row sum is a caller
// error (ErrEmptyRow): the composition shares no species with the basis.
//
// Pure function of its inputs; fixed row/column order.
func compositionMatrix(comps []chem.Composition, basis []chem.Species, normalize bool) ([][]float64, error) {
	rows := make([][]float64, len(comps))
	for i, comp := range comps {
		row := make([]float64, len(basis))
		var sum float64
		for j, sp := range basis {
			row[j] = comp.AtomicFraction(sp)
			sum += row[j]
		}
		if normalize {
			if sum <= 0 {
				return nil, fmt.Errorf("%w: row %d (%s)", ErrEmptyRow, i, comp)
			}
			for j := range row {
				row[j] /= sum
			}
		}
		rows[i] = row
	}

	return rows, nil
}

// hullRows assembles the hull input rows for entries over the basis:
// atomic fractions of basis[1:] (basis[0] is implicit via the simplex
// constraint, reducing dimensionality by one), then energy per atom.
func hullRows(entries []chem.Entry, basis []chem.Species) [][]float64 {
	rows := make([][]float64, len(entries))
	for i, e := range entries {
		comp := e.Composition()
		row := make([]float64, 0, len(basis))
		for _, sp := range basis[1:] {
			row = append(row, comp.AtomicFraction(sp))
		}
		row = append(row, e.EnergyPerAtom())
		rows[i] = row
	}

	return rows
}

// speciesUnion collects the distinct species over all entries, in
// canonical order.
func speciesUnion(entries []chem.Entry) []chem.Species {
	seen := make(map[chem.Species]struct{})
	var out []chem.Species
	for _, e := range entries {
		for _, sp := range e.Composition().Species() {
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
