// Package chem defines the compositional value types the phase-diagram
// engine operates on.
//
// The chem package provides:
//
//   - Species — a hashable, totally ordered identity for one compositional
//     coordinate: either a real chemical element (by symbol) or a synthetic
//     basis axis produced by a compound-terminal reprojection.
//   - Composition — an immutable element→amount mapping with atomic
//     fractions, purity tests and a canonical species order.
//   - Entry — the read-only contract of one candidate phase (composition,
//     total energy, energy per atom, name), plus the concrete PDEntry and
//     the two derived kinds the engine constructs itself:
//     GrandPotentialEntry (open systems) and TransformedEntry
//     (compound-terminal reprojections).
//
// All types are values or immutable-after-construction; safe for
// concurrent readers without locking.
package chem
