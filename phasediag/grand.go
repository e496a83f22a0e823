package phasediag

import (
	"errors"

	"github.com/katalvlaran/phasehull/chem"
)

// BuildGrandPotential constructs a phase diagram for a system open to
// one or more species, each held at a fixed chemical potential. Every
// entry's energy is shifted by −Σ μ·count over the open species, the
// open species are erased from its composition, and the closed remainder
// is handed to Build. Entries that become empty (pure open-species
// phases) drop out rather than fail the build.
//
// An empty elements slice infers the basis from the ORIGINAL entries,
// then removes the open species; an explicit basis is filtered the same
// way.
//
// Errors:
//   - ErrNoChemPots — chempots is empty.
//   - ErrAllOpen — no closed species remain in the basis.
//   - ErrNoEntries — every entry was a pure open-species phase.
//   - anything Build returns.
func BuildGrandPotential(entries []chem.Entry, chempots map[chem.Species]float64, elements []chem.Species, opts ...Option) (*PhaseDiagram, error) {
	if len(chempots) == 0 {
		return nil, ErrNoChemPots
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	basis := resolveBasis(entries, elements)
	closed := make([]chem.Species, 0, len(basis))
	for _, sp := range basis {
		if _, open := chempots[sp]; !open {
			closed = append(closed, sp)
		}
	}
	if len(closed) == 0 {
		return nil, ErrAllOpen
	}

	transformed := make([]chem.Entry, 0, len(entries))
	for _, e := range entries {
		ge, err := chem.NewGrandPotentialEntry(e, chempots)
		if errors.Is(err, chem.ErrEmptyComposition) {
			// Pure open-species phase; it has no place on the closed axes.
			continue
		}
		if err != nil {
			return nil, err
		}
		transformed = append(transformed, ge)
	}
	if len(transformed) == 0 {
		return nil, ErrNoEntries
	}

	pd, err := Build(transformed, closed, opts...)
	if err != nil {
		return nil, err
	}
	pd.chempots = make(map[chem.Species]float64, len(chempots))
	for sp, mu := range chempots {
		pd.chempots[sp] = mu
	}

	return pd, nil
}
