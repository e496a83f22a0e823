// Package reaction provides the reaction-feasibility oracle used by
// compound-terminal phase diagrams: can a target composition be balanced
// as a linear combination of terminal compositions?
//
// The engine consumes only the yes/no verdict (an entry is either
// reachable from the compositional subspace spanned by the terminals, or
// it is dropped). Balance additionally exposes the fitted coefficients
// and residual for callers that want them.
//
// Coefficients may be negative: feasibility means membership in the span
// of the terminals, not in their convex hull.
package reaction
