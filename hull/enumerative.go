package hull

import (
	"math"

	"github.com/katalvlaran/phasehull/matrix"
)

// DefaultPlaneTolerance is the distance below which a point counts as
// lying on a candidate facet's hyperplane.
const DefaultPlaneTolerance = 1e-9

const panicPlaneTolInvalid = "hull: WithPlaneTolerance: eps must be finite, non-negative"

// Option configures the Enumerative provider.
type Option func(*Enumerative)

// WithPlaneTolerance overrides DefaultPlaneTolerance.
// Panics on NaN/±Inf or negative eps (programmer error).
func WithPlaneTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPlaneTolInvalid)
	}

	return func(e *Enumerative) { e.tol = eps }
}

// Enumerative is the in-process hull provider: it enumerates every
// d-point subset in lexicographic order and keeps those whose hyperplane
// has all remaining points on one closed side.
//
// Determinism:
//   - Fixed lexicographic subset order; facet vertex indices ascend.
//
// Complexity:
//   - Time O(C(n,d) · (n·d + d^4)), Space O(d^2) scratch. Adequate for the
//     entry counts and dimensionality of phase diagrams; use Qconvex for
//     large high-dimensional inputs.
type Enumerative struct {
	tol float64
}

// NewEnumerative builds the in-process provider with documented defaults.
func NewEnumerative(opts ...Option) *Enumerative {
	e := &Enumerative{tol: DefaultPlaneTolerance}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Hull returns every boundary facet (upper and lower) of the convex hull
// of points as ascending index tuples.
//
// Errors:
//   - ErrBadDimension, ErrTooFewPoints — input contract violations.
//   - ErrDegenerateInput — every candidate hyperplane was degenerate
//     (all points affinely dependent).
func (e *Enumerative) Hull(points [][]float64) ([]Facet, error) {
	n, d, err := validatePoints(points)
	if err != nil {
		return nil, err
	}

	var facets []Facet
	combo := make([]int, d)
	for i := range combo {
		combo[i] = i
	}
	for {
		normal, offset, ok := facetPlane(points, combo)
		if ok && oneSided(points, combo, normal, offset, e.tol) {
			facets = append(facets, Facet(append([]int(nil), combo...)))
		}
		if !nextCombination(combo, n) {
			break
		}
	}
	if len(facets) == 0 {
		return nil, ErrDegenerateInput
	}

	return facets, nil
}

// facetPlane computes the hyperplane through the combo points: a normal
// vector via cofactor expansion of the edge matrix and its offset.
// ok is false when the points are affinely dependent (zero normal).
func facetPlane(points [][]float64, combo []int) (normal []float64, offset float64, ok bool) {
	d := len(combo)
	base := points[combo[0]]
	// Edge matrix: (d-1) rows of p[combo[i]] - base.
	edges := make([][]float64, d-1)
	for i := 1; i < d; i++ {
		row := make([]float64, d)
		for j := 0; j < d; j++ {
			row[j] = points[combo[i]][j] - base[j]
		}
		edges[i-1] = row
	}

	normal = make([]float64, d)
	sub := make([][]float64, d-1)
	var norm2 float64
	for j := 0; j < d; j++ {
		// Minor: edge matrix with column j removed.
		for i, row := range edges {
			minor := make([]float64, 0, d-1)
			minor = append(minor, row[:j]...)
			minor = append(minor, row[j+1:]...)
			sub[i] = minor
		}
		cof, err := detRows(sub)
		if err != nil {
			return nil, 0, false
		}
		if j%2 == 1 {
			cof = -cof
		}
		normal[j] = cof
		norm2 += cof * cof
	}
	if norm2 == 0 {
		return nil, 0, false
	}
	// Normalize so the plane tolerance is a geometric distance.
	scale := 1 / math.Sqrt(norm2)
	for j := range normal {
		normal[j] *= scale
		offset += normal[j] * base[j]
	}

	return normal, offset, true
}

// detRows computes the determinant of square row data, treating the
// degenerate 0x0 case (d=1 minors) as 1.
func detRows(rows [][]float64) (float64, error) {
	if len(rows) == 0 {
		return 1, nil
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return 0, err
	}

	return matrix.Det(m)
}

// oneSided reports whether every point outside combo lies on one closed
// side of the plane (normal, offset), within tol.
func oneSided(points [][]float64, combo []int, normal []float64, offset, tol float64) bool {
	inCombo := func(idx int) bool {
		for _, c := range combo {
			if c == idx {
				return true
			}
		}

		return false
	}
	var above, below bool
	for idx, p := range points {
		if inCombo(idx) {
			continue
		}
		s := -offset
		for j, nj := range normal {
			s += nj * p[j]
		}
		if s > tol {
			above = true
		} else if s < -tol {
			below = true
		}
		if above && below {
			return false
		}
	}

	return true
}

// nextCombination advances combo to the next lexicographic d-subset of
// [0, n); it reports false once combo was the last subset.
func nextCombination(combo []int, n int) bool {
	d := len(combo)
	i := d - 1
	for i >= 0 && combo[i] == n-d+i {
		i--
	}
	if i < 0 {
		return false
	}
	combo[i]++
	for j := i + 1; j < d; j++ {
		combo[j] = combo[j-1] + 1
	}

	return true
}
