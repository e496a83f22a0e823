package hull

// Facet is the index tuple of one hull facet's vertices; indices point
// into the provider's input row order.
type Facet []int

// Provider computes convex-hull facets for a set of points in R^d.
//
// Implementations must return facets as index tuples consistent with the
// input row ordering and must be stateless across calls (safe for
// concurrent use by independent builds).
type Provider interface {
	// Hull returns the boundary facets of the convex hull of points.
	// Providers may return both upper- and lower-hull facets; callers
	// filter for the physically meaningful side.
	Hull(points [][]float64) ([]Facet, error)
}

// validatePoints checks the shared input contract: a rectangular matrix
// of width d >= 2 with at least d+1 rows. Returns (n, d) on success.
func validatePoints(points [][]float64) (int, int, error) {
	if len(points) == 0 || len(points[0]) < 2 {
		return 0, 0, ErrBadDimension
	}
	d := len(points[0])
	for _, row := range points {
		if len(row) != d {
			return 0, 0, ErrBadDimension
		}
	}
	if len(points) < d+1 {
		return 0, 0, ErrTooFewPoints
	}

	return len(points), d, nil
}
