package chem

import (
	"sort"
	"strconv"
)

// Internal panic messages (programmer errors only; no magic strings).
const (
	panicEmptySymbol = "chem: Elem: symbol must be non-empty"
	panicBadAxis     = "chem: Axis: index must be >= 1"
)

// Species identifies one compositional coordinate of a phase diagram:
// either a real chemical element (by symbol) or a synthetic basis axis
// standing in for a terminal compound in a reprojected compound diagram.
//
// Species is comparable (usable as a map key) and totally ordered via
// Less: real elements sort lexicographically by symbol, and every
// synthetic axis sorts after every real element, by ascending index.
// Keeping axes a distinct identity guarantees they can never collide
// with the real periodic table.
type Species struct {
	symbol string // element symbol; empty for synthetic axes
	axis   int    // 1-based axis index; 0 for real elements
}

// Elem returns the Species for a real chemical element.
// Panics on an empty symbol (programmer error).
func Elem(symbol string) Species {
	if symbol == "" {
		panic(panicEmptySymbol)
	}

	return Species{symbol: symbol}
}

// Axis returns the synthetic Species for basis axis i (1-based).
// Panics on i < 1 (programmer error).
func Axis(i int) Species {
	if i < 1 {
		panic(panicBadAxis)
	}

	return Species{axis: i}
}

// IsAxis reports whether s is a synthetic basis axis.
func (s Species) IsAxis() bool { return s.axis > 0 }

// Symbol returns the element symbol, or "" for a synthetic axis.
func (s Species) Symbol() string { return s.symbol }

// AxisIndex returns the 1-based axis index, or 0 for a real element.
func (s Species) AxisIndex() int { return s.axis }

// String renders the species for display: the symbol for elements,
// "X<i>" for synthetic axes.
func (s Species) String() string {
	if s.IsAxis() {
		return "X" + strconv.Itoa(s.axis)
	}

	return s.symbol
}

// Less reports whether s orders before other under the canonical total
// order: elements by symbol, then axes by index.
func (s Species) Less(other Species) bool {
	if s.IsAxis() != other.IsAxis() {
		return !s.IsAxis() // elements before axes
	}
	if s.IsAxis() {
		return s.axis < other.axis
	}

	return s.symbol < other.symbol
}

// SortSpecies sorts sp in place into the canonical order.
// Determinism of every basis in the engine relies on this order.
func SortSpecies(sp []Species) {
	sort.Slice(sp, func(i, j int) bool { return sp[i].Less(sp[j]) })
}
