// Package phasediag: functional configuration for diagram construction.
// This file defines the Option/Options pair, the documented defaults
// (single source of truth — the spec-level tolerances live here, never
// hard-coded at call sites), WithX constructors with strict validation
// (panic on nonsensical values, programmer error), and the internal
// gatherOptions resolver.

package phasediag

import (
	"math"

	"github.com/katalvlaran/phasehull/hull"
)

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultFormationEnergyTolerance: an entry joins the hull input only
	// when its per-formula formation energy is <= −tolerance. References
	// are force-included regardless.
	DefaultFormationEnergyTolerance = 1e-11

	// DefaultVerticalFacetTolerance: a facet whose homogeneous-coordinate
	// determinant has |det| <= tolerance is vertical (energy-degenerate)
	// and discarded.
	DefaultVerticalFacetTolerance = 1e-8

	// DefaultCoplanarityTolerance: the compound-terminal transform calls
	// a species subset coplanar when every square composition submatrix
	// has |det| <= tolerance.
	DefaultCoplanarityTolerance = 1e-5

	// DefaultRoundDigits: reprojected coordinates are rounded to this many
	// decimal places to suppress numerical noise.
	DefaultRoundDigits = 5
)

// Internal panic messages (no magic strings).
const (
	panicNilProvider   = "phasediag: WithHullProvider: provider must be non-nil"
	panicTolInvalid    = "phasediag: tolerance must be finite, non-negative"
	panicDigitsInvalid = "phasediag: WithRoundDigits: digits must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	provider     hull.Provider
	formationTol float64
	verticalTol  float64
	coplanarTol  float64
	roundDigits  int
}

// WithHullProvider selects the hull backend (in-process enumeration by
// default; hull.NewQconvex for the external tool). Panics on nil.
func WithHullProvider(p hull.Provider) Option {
	if p == nil {
		panic(panicNilProvider)
	}

	return func(o *Options) { o.provider = p }
}

// WithFormationEnergyTolerance overrides DefaultFormationEnergyTolerance.
// Panics on NaN/±Inf or negative tol.
func WithFormationEnergyTolerance(tol float64) Option {
	validateTol(tol)

	return func(o *Options) { o.formationTol = tol }
}

// WithVerticalFacetTolerance overrides DefaultVerticalFacetTolerance.
// Panics on NaN/±Inf or negative tol.
func WithVerticalFacetTolerance(tol float64) Option {
	validateTol(tol)

	return func(o *Options) { o.verticalTol = tol }
}

// WithCoplanarityTolerance overrides DefaultCoplanarityTolerance.
// Panics on NaN/±Inf or negative tol.
func WithCoplanarityTolerance(tol float64) Option {
	validateTol(tol)

	return func(o *Options) { o.coplanarTol = tol }
}

// WithRoundDigits overrides DefaultRoundDigits for the compound-terminal
// reprojection. Panics on negative digits.
func WithRoundDigits(digits int) Option {
	if digits < 0 {
		panic(panicDigitsInvalid)
	}

	return func(o *Options) { o.roundDigits = digits }
}

func validateTol(tol float64) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicTolInvalid)
	}
}

// gatherOptions applies user setters on top of the documented defaults;
// last-writer-wins. The default provider is the in-process enumeration.
func gatherOptions(user ...Option) Options {
	o := Options{
		provider:     hull.NewEnumerative(),
		formationTol: DefaultFormationEnergyTolerance,
		verticalTol:  DefaultVerticalFacetTolerance,
		coplanarTol:  DefaultCoplanarityTolerance,
		roundDigits:  DefaultRoundDigits,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
