// Package hull provides pluggable convex-hull providers for the
// phase-diagram engine.
//
// The contract (one interface, two conforming implementations):
//
//   - Input: an ordered sequence of numeric rows, each a point in R^d
//     (fixed row width d >= 2).
//   - Output: an ordered sequence of facets, each an ordered tuple of row
//     indices into the input. Providers may return every boundary facet,
//     upper and lower hull alike — callers filter.
//
// Enumerative is the in-process provider: a deterministic facet
// enumeration adequate for the low dimensionality of typical phase
// diagrams (<= 4 independent coordinates). Qconvex shells out to the
// external qhull `qconvex` tool, the more robust escape hatch for
// higher-dimensional hulls with many points. The two are interchangeable
// behind Provider; selecting one is a configuration decision, not a
// correctness difference callers should rely on.
package hull
