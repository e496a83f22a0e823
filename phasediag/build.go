package phasediag

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/phasehull/chem"
	"github.com/katalvlaran/phasehull/matrix"
)

// Build constructs a PhaseDiagram from entries over the given species
// basis. An empty basis is inferred as the canonical sorted union of the
// entries' species. The whole diagram is computed here, eagerly; the
// returned value is immutable.
//
// Implementation:
//   - Stage 1: resolve options and basis; select elemental references
//     (minimum energy-per-atom pure entry per species).
//   - Stage 2: filter to hull input — entries with per-formula formation
//     energy <= −FormationEnergyTolerance, plus every reference.
//   - Stage 3: assemble hull rows, compute facets (short-circuiting the
//     single-species and minimal-simplex cases), filter degenerate
//     facets, union the survivors into the stable set.
//
// Errors:
//   - ErrNoEntries — empty input.
//   - ErrMissingReference — a species (in the basis or any entry) has no
//     pure-element entry.
//   - ErrHullProvider — the hull backend failed or broke its contract.
//
// Determinism:
//   - Canonical basis order, fixed entry order (compounds in input order,
//     then references in species order), facets canonicalized ascending.
func Build(entries []chem.Entry, elements []chem.Species, opts ...Option) (*PhaseDiagram, error) {
	o := gatherOptions(opts...)
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	basis := resolveBasis(entries, elements)
	refs := selectReferences(entries)
	if err := checkReferenceCoverage(entries, basis, refs); err != nil {
		return nil, err
	}

	pd := &PhaseDiagram{
		elements:   basis,
		allEntries: append([]chem.Entry(nil), entries...),
		elRefs:     refs,
	}

	// Hull input: strictly negative formation energy entries first (input
	// order), then the references themselves — force-included even when
	// their own formation energy is exactly zero.
	refSet := make(map[chem.Entry]struct{}, len(refs))
	for _, ref := range refs {
		refSet[ref] = struct{}{}
	}
	for _, e := range entries {
		if _, isRef := refSet[e]; isRef {
			continue
		}
		if formationEnergy(e, refs) <= -o.formationTol {
			pd.qhullEntries = append(pd.qhullEntries, e)
		}
	}
	refSpecies := make([]chem.Species, 0, len(refs))
	for sp := range refs {
		refSpecies = append(refSpecies, sp)
	}
	chem.SortSpecies(refSpecies)
	for _, sp := range refSpecies {
		pd.qhullEntries = append(pd.qhullEntries, refs[sp])
	}
	pd.qhullData = hullRows(pd.qhullEntries, basis)

	facets, err := computeFacets(pd, o)
	if err != nil {
		return nil, err
	}
	pd.facets = facets

	pd.stable = make(map[chem.Entry]struct{})
	for _, facet := range pd.facets {
		for _, v := range facet {
			pd.stable[pd.qhullEntries[v]] = struct{}{}
		}
	}

	return pd, nil
}

// resolveBasis copies and canonicalizes the explicit basis, or infers it
// as the species union of the entries.
func resolveBasis(entries []chem.Entry, elements []chem.Species) []chem.Species {
	if len(elements) == 0 {
		return speciesUnion(entries)
	}
	seen := make(map[chem.Species]struct{}, len(elements))
	basis := make([]chem.Species, 0, len(elements))
	for _, sp := range elements {
		if _, ok := seen[sp]; ok {
			continue
		}
		seen[sp] = struct{}{}
		basis = append(basis, sp)
	}
	chem.SortSpecies(basis)

	return basis
}

// selectReferences finds, per species, the minimum energy-per-atom pure
// entry. Ties keep the earliest entry (fixed input order).
func selectReferences(entries []chem.Entry) map[chem.Species]chem.Entry {
	refs := make(map[chem.Species]chem.Entry)
	for _, e := range entries {
		sp, pure := e.Composition().PureSpecies()
		if !pure {
			continue
		}
		current, ok := refs[sp]
		if !ok || current.EnergyPerAtom() > e.EnergyPerAtom() {
			refs[sp] = e
		}
	}

	return refs
}

// checkReferenceCoverage verifies that every basis species and every
// species of every entry has an elemental reference.
func checkReferenceCoverage(entries []chem.Entry, basis []chem.Species, refs map[chem.Species]chem.Entry) error {
	for _, sp := range basis {
		if _, ok := refs[sp]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingReference, sp)
		}
	}
	for _, e := range entries {
		for _, sp := range e.Composition().Species() {
			if _, ok := refs[sp]; !ok {
				return fmt.Errorf("%w: %s", ErrMissingReference, sp)
			}
		}
	}

	return nil
}

// formationEnergy computes the per-formula formation energy of e against
// the references. Coverage is checked up front, so lookups cannot miss.
func formationEnergy(e chem.Entry, refs map[chem.Species]chem.Entry) float64 {
	energy := e.Energy()
	for sp, amt := range e.Composition().Amounts() {
		energy -= amt * refs[sp].EnergyPerAtom()
	}

	return energy
}

// computeFacets produces the surviving facets for pd under options o.
//
// Short circuits (no hull backend invoked, no facet filtering — these
// cases have nothing to filter):
//   - dim == 1: the hull degenerates to a single facet over every entry.
//   - exactly dim rows: the minimal simplex is the single facet.
func computeFacets(pd *PhaseDiagram, o Options) ([][]int, error) {
	dim := len(pd.elements)
	n := len(pd.qhullData)

	if dim == 1 {
		return [][]int{indexRange(n)}, nil
	}
	if n == dim {
		return [][]int{indexRange(dim)}, nil
	}

	raw, err := o.provider.Hull(pd.qhullData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHullProvider, err)
	}

	kept := make([][]int, 0, len(raw))
	for _, facet := range raw {
		if len(facet) != dim {
			return nil, fmt.Errorf("%w: facet has %d vertices, want %d", ErrHullProvider, len(facet), dim)
		}
		keep, err := keepFacet(pd, facet, dim, o.verticalTol)
		if err != nil {
			return nil, err
		}
		if keep {
			canon := append([]int(nil), facet...)
			sort.Ints(canon)
			kept = append(kept, canon)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return lessIntSlice(kept[i], kept[j]) })

	return kept, nil
}

// keepFacet applies the two discard heuristics of the degenerate filter:
//
//  1. Vertical facet: each vertex's hull row with its last column forced
//     to 1 (homogeneous hyperplane-membership trick); |det| within
//     tolerance means the vertices are degenerate in the energy
//     direction — a triangulation artifact, not a tie-line.
//  2. All-elemental facet: every vertex entry pure — an artifact at the
//     simplex boundary, discarded regardless of the determinant.
func keepFacet(pd *PhaseDiagram, facet []int, dim int, verticalTol float64) (bool, error) {
	rows := make([][]float64, len(facet))
	allElemental := true
	for i, v := range facet {
		row := append([]float64(nil), pd.qhullData[v]...)
		row[dim-1] = 1
		rows[i] = row
		if pd.qhullEntries[v].Composition().NumSpecies() > 1 {
			allElemental = false
		}
	}
	if allElemental {
		return false, nil
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrHullProvider, err)
	}
	det, err := matrix.Det(m)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrHullProvider, err)
	}

	return math.Abs(det) > verticalTol, nil
}

// indexRange returns [0, 1, ..., n-1].
func indexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// lessIntSlice is the lexicographic order on int slices.
func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
