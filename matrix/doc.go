// Package matrix provides the small set of dense linear-algebra kernels
// the phase-diagram engine needs: determinants for the vertical-facet and
// coplanarity tests, inversion for the compound-terminal basis transform,
// and products for the reaction-feasibility oracle.
//
// All kernels are deterministic (fixed loop orders, no randomness, no
// global state), validate fail-fast, and return package sentinel errors
// matched via errors.Is.
package matrix
