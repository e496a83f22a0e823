package hull

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultQconvexPath is the executable resolved from PATH when no
// explicit path is configured.
const DefaultQconvexPath = "qconvex"

// Qconvex is the external hull provider: it marshals the points into
// qhull's plain-text input format, runs `qconvex i Qt` as a synchronous
// subprocess, and parses the facet vertex indices it prints.
//
// Each call spawns a fresh process over stdin/stdout; no temp files and
// no shared state, so independent builds may run concurrently.
type Qconvex struct {
	path string
}

// NewQconvex builds the external provider. An empty path selects
// DefaultQconvexPath (resolved from PATH at call time).
func NewQconvex(path string) *Qconvex {
	if path == "" {
		path = DefaultQconvexPath
	}

	return &Qconvex{path: path}
}

// Hull invokes qconvex on points and returns the parsed facets.
//
// Errors:
//   - ErrBadDimension, ErrTooFewPoints — input contract violations.
//   - ErrExternalTool — the tool is missing or exited non-zero.
//   - ErrMalformedOutput — the tool's output could not be parsed.
func (q *Qconvex) Hull(points [][]float64) ([]Facet, error) {
	n, d, err := validatePoints(points)
	if err != nil {
		return nil, err
	}

	// qhull input format: dimension, point count, then one row per point.
	var in strings.Builder
	in.WriteString(strconv.Itoa(d))
	in.WriteByte('\n')
	in.WriteString(strconv.Itoa(n))
	in.WriteByte('\n')
	for _, row := range points {
		for j, v := range row {
			if j > 0 {
				in.WriteByte(' ')
			}
			in.WriteString(strconv.FormatFloat(v, 'g', 17, 64))
		}
		in.WriteByte('\n')
	}

	// "i" prints facet vertex indices; "Qt" triangulates non-simplicial
	// facets so every output row is an index d-tuple.
	cmd := exec.Command(q.path, "i", "Qt")
	cmd.Stdin = strings.NewReader(in.String())
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalTool, err)
	}

	return parseIndexOutput(out, n)
}

// parseIndexOutput parses qconvex "i" output: a facet count line followed
// by one whitespace-separated index tuple per facet. Indices are bounds-
// checked against the input point count.
func parseIndexOutput(out []byte, n int) ([]Facet, error) {
	lines := strings.Fields(strings.TrimSpace(string(out)))
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrMalformedOutput)
	}
	// Token stream: first token is the facet count; the rest are indices.
	count, err := strconv.Atoi(lines[0])
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: bad facet count %q", ErrMalformedOutput, lines[0])
	}
	rest := lines[1:]
	if count == 0 {
		return nil, fmt.Errorf("%w: zero facets", ErrMalformedOutput)
	}
	if len(rest)%count != 0 {
		return nil, fmt.Errorf("%w: %d index tokens for %d facets", ErrMalformedOutput, len(rest), count)
	}
	width := len(rest) / count
	facets := make([]Facet, 0, count)
	for f := 0; f < count; f++ {
		facet := make(Facet, width)
		for j := 0; j < width; j++ {
			idx, err := strconv.Atoi(rest[f*width+j])
			if err != nil || idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: bad vertex index %q", ErrMalformedOutput, rest[f*width+j])
			}
			facet[j] = idx
		}
		facets = append(facets, facet)
	}

	return facets, nil
}
