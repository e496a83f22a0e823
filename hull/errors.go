package hull

import "errors"

var (
	// ErrBadDimension indicates empty input, a row width < 2, or ragged rows.
	ErrBadDimension = errors.New("hull: points must form a rectangular matrix of width >= 2")
	// ErrTooFewPoints indicates fewer than d+1 points in R^d — no full-
	// dimensional hull exists.
	ErrTooFewPoints = errors.New("hull: need at least dim+1 points")
	// ErrDegenerateInput indicates all points lie in a common hyperplane;
	// no full-dimensional facet exists.
	ErrDegenerateInput = errors.New("hull: input points are degenerate")
	// ErrExternalTool indicates the external qconvex invocation failed
	// (not found, non-zero exit).
	ErrExternalTool = errors.New("hull: external qconvex call failed")
	// ErrMalformedOutput indicates unparseable external-tool output.
	ErrMalformedOutput = errors.New("hull: malformed qconvex output")
)
