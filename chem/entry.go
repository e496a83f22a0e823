package chem

// Entry is the read-only contract of one candidate phase: a composition
// and a computed total energy. The engine never constructs base entries;
// callers supply them (typically as *PDEntry) and the engine derives
// GrandPotentialEntry and TransformedEntry values from them.
//
// Implementations must be usable as map keys (pointer types qualify), so
// entry sets deduplicate by identity.
type Entry interface {
	// Composition returns the entry's composition.
	Composition() Composition
	// Energy returns the total (per formula unit) energy.
	Energy() float64
	// EnergyPerAtom returns Energy() / Composition().NumAtoms().
	EnergyPerAtom() float64
	// Name returns a display name for the entry.
	Name() string
}

// PDEntry is the plain concrete Entry for phase-diagram construction.
type PDEntry struct {
	name   string
	comp   Composition
	energy float64
}

// NewEntry builds a PDEntry with the given display name, composition and
// total energy.
func NewEntry(name string, comp Composition, energy float64) *PDEntry {
	return &PDEntry{name: name, comp: comp, energy: energy}
}

// Composition returns the entry's composition.
func (e *PDEntry) Composition() Composition { return e.comp }

// Energy returns the total energy.
func (e *PDEntry) Energy() float64 { return e.energy }

// EnergyPerAtom returns the total energy divided by the atom count.
func (e *PDEntry) EnergyPerAtom() float64 { return e.energy / e.comp.NumAtoms() }

// Name returns the display name.
func (e *PDEntry) Name() string { return e.name }

// String renders "name" for logging and diagram summaries.
func (e *PDEntry) String() string { return e.name }

// GrandPotentialEntry reformulates an Entry at fixed chemical potentials:
// the energy becomes the grand potential
//
//	Φ = E − Σ_open μ[sp]·count[sp]
//
// and the composition is restricted to the closed (non-open) species.
type GrandPotentialEntry struct {
	original Entry
	comp     Composition
	energy   float64
}

// NewGrandPotentialEntry derives a grand-potential entry from original
// under the given open-species chemical potentials.
//
// Errors:
//   - ErrNilEntry — original is nil.
//   - ErrEmptyComposition — every species of original is open; the entry
//     has no coordinates in the closed subspace.
func NewGrandPotentialEntry(original Entry, chempots map[Species]float64) (*GrandPotentialEntry, error) {
	if original == nil {
		return nil, ErrNilEntry
	}
	comp := original.Composition()
	closed := make(map[Species]float64, comp.NumSpecies())
	energy := original.Energy()
	for sp, amt := range comp.Amounts() {
		mu, open := chempots[sp]
		if open {
			energy -= amt * mu
			continue
		}
		closed[sp] = amt
	}
	restricted, err := NewComposition(closed)
	if err != nil {
		return nil, err
	}

	return &GrandPotentialEntry{original: original, comp: restricted, energy: energy}, nil
}

// Composition returns the composition restricted to closed species.
func (e *GrandPotentialEntry) Composition() Composition { return e.comp }

// Energy returns the grand potential.
func (e *GrandPotentialEntry) Energy() float64 { return e.energy }

// EnergyPerAtom returns the grand potential per closed atom.
func (e *GrandPotentialEntry) EnergyPerAtom() float64 { return e.energy / e.comp.NumAtoms() }

// Name returns the original entry's name.
func (e *GrandPotentialEntry) Name() string { return e.original.Name() }

// Original returns the wrapped entry (display/identity only, not owned).
func (e *GrandPotentialEntry) Original() Entry { return e.original }

// TransformedEntry reprojects an Entry onto a basis of synthetic axis
// species (one per terminal composition of a compound diagram), carrying
// a re-scaled energy. The back-reference to the original entry exists for
// display and identity purposes only.
type TransformedEntry struct {
	original Entry
	comp     Composition
	energy   float64
}

// NewTransformedEntry wraps original with its reprojected composition
// (over Axis species) and re-scaled energy.
//
// Errors:
//   - ErrNilEntry — original is nil.
func NewTransformedEntry(original Entry, comp Composition, energy float64) (*TransformedEntry, error) {
	if original == nil {
		return nil, ErrNilEntry
	}

	return &TransformedEntry{original: original, comp: comp, energy: energy}, nil
}

// Composition returns the reprojected composition over axis species.
func (e *TransformedEntry) Composition() Composition { return e.comp }

// Energy returns the re-scaled energy.
func (e *TransformedEntry) Energy() float64 { return e.energy }

// EnergyPerAtom returns the re-scaled energy per reprojected atom.
func (e *TransformedEntry) EnergyPerAtom() float64 { return e.energy / e.comp.NumAtoms() }

// Name returns the original entry's name.
func (e *TransformedEntry) Name() string { return e.original.Name() }

// Original returns the wrapped entry (display/identity only, not owned).
func (e *TransformedEntry) Original() Entry { return e.original }
