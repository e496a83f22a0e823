// Package phasediag is the convex-hull stability engine: it takes
// candidate entries (composition + energy) and determines which lie on
// the lower convex hull of the energy-composition space — the stable
// phases.
//
// Construction pipeline (Build):
//
//  1. Select elemental references — the lowest energy-per-atom pure
//     entry per species; these anchor the formation-energy zero.
//  2. Compute formation energies and keep entries at or below
//     −FormationEnergyTolerance, plus the references themselves.
//  3. Assemble hull rows: atomic fractions of the basis species (the
//     first is implicit via the simplex constraint) plus energy per atom.
//  4. Compute hull facets via the configured hull.Provider, short-
//     circuiting the minimal-simplex and single-species cases.
//  5. Discard degenerate facets: numerically vertical ones (homogeneous
//     determinant within VerticalFacetTolerance) and facets composed
//     entirely of pure-element vertices.
//  6. Union the surviving facet vertices into the stable-entry set.
//
// The two specialized diagrams are preprocessing transforms in front of
// the same core, not subclasses: BuildGrandPotential reformulates entries
// at fixed chemical potentials for open species; BuildCompound reprojects
// entries onto a basis of terminal compositions.
//
// A PhaseDiagram is fully computed at construction and immutable
// afterwards — safe for concurrent readers without locking. Every
// failure aborts construction; there is no partial build.
package phasediag
