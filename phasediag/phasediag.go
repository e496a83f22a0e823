package phasediag

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/phasehull/chem"
)

// PhaseDiagram is the primary artifact: the fully computed stability
// analysis of one entry set over one species basis. It is immutable
// after construction — recomputation means building a new instance.
type PhaseDiagram struct {
	elements     []chem.Species
	allEntries   []chem.Entry
	qhullEntries []chem.Entry
	qhullData    [][]float64
	facets       [][]int
	stable       map[chem.Entry]struct{}
	elRefs       map[chem.Species]chem.Entry
	chempots     map[chem.Species]float64 // nil for closed systems
}

// Dim returns the diagram dimensionality (number of basis species).
func (pd *PhaseDiagram) Dim() int { return len(pd.elements) }

// Elements returns the ordered species basis defining the coordinate
// system.
func (pd *PhaseDiagram) Elements() []chem.Species {
	return append([]chem.Species(nil), pd.elements...)
}

// AllEntries returns the full input entry list, never filtered.
func (pd *PhaseDiagram) AllEntries() []chem.Entry {
	return append([]chem.Entry(nil), pd.allEntries...)
}

// QhullEntries returns the entries actually fed to the hull: the
// negative-formation-energy subset plus the elemental references.
func (pd *PhaseDiagram) QhullEntries() []chem.Entry {
	return append([]chem.Entry(nil), pd.qhullEntries...)
}

// QhullData returns the hull input rows parallel to QhullEntries:
// atomic fractions of Elements()[1:] followed by energy per atom.
func (pd *PhaseDiagram) QhullData() [][]float64 {
	return copyRows(pd.qhullData)
}

// AllEntriesHullData returns hull-style rows for every input entry, not
// only the filtered subset.
func (pd *PhaseDiagram) AllEntriesHullData() [][]float64 {
	return hullRows(pd.allEntries, pd.elements)
}

// Facets returns the surviving lower-hull facets as index tuples into
// QhullEntries. Vertex indices ascend within a facet; facets are in
// lexicographic order.
func (pd *PhaseDiagram) Facets() [][]int {
	out := make([][]int, len(pd.facets))
	for i, f := range pd.facets {
		out[i] = append([]int(nil), f...)
	}

	return out
}

// StableEntries returns the entries on the lower hull, in QhullEntries
// order (a deterministic rendering of the underlying set).
func (pd *PhaseDiagram) StableEntries() []chem.Entry {
	out := make([]chem.Entry, 0, len(pd.stable))
	for _, e := range pd.qhullEntries {
		if _, ok := pd.stable[e]; ok {
			out = append(out, e)
		}
	}

	return out
}

// UnstableEntries returns AllEntries minus the stable set, in input
// order. Derived, not stored.
func (pd *PhaseDiagram) UnstableEntries() []chem.Entry {
	out := make([]chem.Entry, 0, len(pd.allEntries))
	for _, e := range pd.allEntries {
		if _, ok := pd.stable[e]; !ok {
			out = append(out, e)
		}
	}

	return out
}

// IsStable reports whether e lies on the lower hull.
func (pd *PhaseDiagram) IsStable(e chem.Entry) bool {
	_, ok := pd.stable[e]

	return ok
}

// ElementalReferences returns the species→reference-entry mapping that
// anchors the formation-energy zero.
func (pd *PhaseDiagram) ElementalReferences() map[chem.Species]chem.Entry {
	out := make(map[chem.Species]chem.Entry, len(pd.elRefs))
	for sp, e := range pd.elRefs {
		out[sp] = e
	}

	return out
}

// ChemicalPotentials returns the open-species chemical potentials for a
// grand-potential diagram, or nil for a closed system.
func (pd *PhaseDiagram) ChemicalPotentials() map[chem.Species]float64 {
	if pd.chempots == nil {
		return nil
	}
	out := make(map[chem.Species]float64, len(pd.chempots))
	for sp, mu := range pd.chempots {
		out[sp] = mu
	}

	return out
}

// FormationEnergy returns the (per-formula, NOT normalized) formation
// energy of entry relative to the elemental references:
//
//	E_f = E − Σ_sp count[sp]·epaRef[sp]
//
// Errors:
//   - ErrMissingReference — entry contains a species without a reference.
func (pd *PhaseDiagram) FormationEnergy(entry chem.Entry) (float64, error) {
	comp := entry.Composition()
	energy := entry.Energy()
	for sp, amt := range comp.Amounts() {
		ref, ok := pd.elRefs[sp]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingReference, sp)
		}
		energy -= amt * ref.EnergyPerAtom()
	}

	return energy, nil
}

// FormationEnergyPerAtom returns FormationEnergy divided by the entry's
// atom count.
func (pd *PhaseDiagram) FormationEnergyPerAtom(entry chem.Entry) (float64, error) {
	ef, err := pd.FormationEnergy(entry)
	if err != nil {
		return 0, err
	}

	return ef / entry.Composition().NumAtoms(), nil
}

// String renders a summary: the hyphenated basis, the kind of diagram,
// and the stable phase names in StableEntries order.
func (pd *PhaseDiagram) String() string {
	symbols := make([]string, len(pd.elements))
	for i, sp := range pd.elements {
		symbols[i] = sp.String()
	}
	var b strings.Builder
	b.WriteString(strings.Join(symbols, "-"))
	if pd.chempots == nil {
		b.WriteString(" phase diagram\n")
	} else {
		b.WriteString(" grand potential phase diagram with ")
		open := make([]chem.Species, 0, len(pd.chempots))
		for sp := range pd.chempots {
			open = append(open, sp)
		}
		chem.SortSpecies(open)
		for i, sp := range open {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "u%s=%g", sp, pd.chempots[sp])
		}
		b.WriteString("\n")
	}
	names := make([]string, 0, len(pd.stable))
	for _, e := range pd.StableEntries() {
		names = append(names, e.Name())
	}
	fmt.Fprintf(&b, "%d stable phases: %s", len(names), strings.Join(names, ", "))

	return b.String()
}

// copyRows deep-copies a row matrix.
func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
