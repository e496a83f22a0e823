package chem

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AmountTolerance is the threshold below which a species amount is treated
// as floating-point noise and dropped from a composition.
const AmountTolerance = 1e-8

// Composition is an immutable species→amount mapping with at least one
// amount above AmountTolerance. Amounts are in atoms per formula unit;
// atomic fractions are derived on demand.
type Composition struct {
	amounts map[Species]float64
	natoms  float64
}

// NewComposition builds a Composition from species amounts.
// Amounts at or below AmountTolerance are dropped; the input map is copied.
//
// Errors:
//   - ErrNegativeAmount  — any amount < 0.
//   - ErrNonFiniteAmount — any NaN/±Inf amount.
//   - ErrEmptyComposition — nothing remains above tolerance.
func NewComposition(amounts map[Species]float64) (Composition, error) {
	kept := make(map[Species]float64, len(amounts))
	var natoms float64
	for sp, amt := range amounts {
		if math.IsNaN(amt) || math.IsInf(amt, 0) {
			return Composition{}, fmt.Errorf("%s: %w", sp, ErrNonFiniteAmount)
		}
		if amt < 0 {
			return Composition{}, fmt.Errorf("%s: %w", sp, ErrNegativeAmount)
		}
		if amt <= AmountTolerance {
			continue // noise guard
		}
		kept[sp] = amt
		natoms += amt
	}
	if len(kept) == 0 {
		return Composition{}, ErrEmptyComposition
	}

	return Composition{amounts: kept, natoms: natoms}, nil
}

// MustComposition is NewComposition that panics on error.
// Intended for literals in tests and examples.
func MustComposition(amounts map[Species]float64) Composition {
	c, err := NewComposition(amounts)
	if err != nil {
		panic(err)
	}

	return c
}

// Amount returns the amount of sp, or 0 when absent.
func (c Composition) Amount(sp Species) float64 { return c.amounts[sp] }

// AtomicFraction returns Amount(sp) / NumAtoms().
func (c Composition) AtomicFraction(sp Species) float64 {
	if c.natoms == 0 {
		return 0
	}

	return c.amounts[sp] / c.natoms
}

// NumAtoms returns the total atom count of the formula unit.
func (c Composition) NumAtoms() float64 { return c.natoms }

// NumSpecies returns the number of species above tolerance.
func (c Composition) NumSpecies() int { return len(c.amounts) }

// Species returns the species present, in canonical order.
func (c Composition) Species() []Species {
	out := make([]Species, 0, len(c.amounts))
	for sp := range c.amounts {
		out = append(out, sp)
	}
	SortSpecies(out)

	return out
}

// Amounts returns a copy of the species→amount mapping.
func (c Composition) Amounts() map[Species]float64 {
	out := make(map[Species]float64, len(c.amounts))
	for sp, amt := range c.amounts {
		out[sp] = amt
	}

	return out
}

// IsPure reports whether exactly one species is present above tolerance.
func (c Composition) IsPure() bool { return len(c.amounts) == 1 }

// PureSpecies returns the single species of a pure composition, if any.
func (c Composition) PureSpecies() (Species, bool) {
	if len(c.amounts) != 1 {
		return Species{}, false
	}
	for sp := range c.amounts {
		return sp, true
	}

	return Species{}, false
}

// String renders a formula-like form ("A2 B" for {A:2, B:1}) in canonical
// species order. Unit amounts omit the number.
func (c Composition) String() string {
	parts := make([]string, 0, len(c.amounts))
	for _, sp := range c.Species() {
		amt := c.amounts[sp]
		if amt == 1 {
			parts = append(parts, sp.String())
			continue
		}
		parts = append(parts, sp.String()+strconv.FormatFloat(amt, 'g', -1, 64))
	}

	return strings.Join(parts, " ")
}
