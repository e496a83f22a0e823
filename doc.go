// Package phasehull computes thermodynamic phase diagrams from candidate
// material compositions and their energies, using convex-hull geometry to
// decide which phases are stable.
//
// 🚀 What is phasehull?
//
//	A deterministic, pure-Go stability engine:
//		• Elemental references & formation energies from raw entry lists
//		• Lower-hull facet computation with pluggable providers
//		• Vertical / all-elemental facet filtering
//		• Grand-potential (open-system) phase diagrams
//		• Compound-terminal (pseudo-element) phase diagrams
//
// ✨ Why choose phasehull?
//
//   - Deterministic by construction – fixed iteration orders, no global state
//   - Rock-solid error surfaces – sentinel errors, errors.Is everywhere
//   - Pure Go – no cgo; the external qhull tool is an optional escape hatch
//
// Everything is organized under five subpackages:
//
//	chem/      — Species, Composition and Entry value types
//	matrix/    — dense linear-algebra kernels (Det, Inverse, Mul, MatVec)
//	hull/      — convex-hull providers (in-process enumeration, external qconvex)
//	reaction/  — reaction-feasibility oracle for compound diagrams
//	phasediag/ — the phase-diagram engine and its two transforms
//
// Quick sketch (2-component system, fraction of B vs energy per atom):
//
//	 A●────────●B      ← elemental references (formation energy zero)
//	   ╲      ╱
//	    ●──●╱          ← stable compounds on the lower hull
//
// Start with phasediag.Build; see phasediag's examples for end-to-end usage.
package phasehull
