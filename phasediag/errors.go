package phasediag

import "errors"

var (
	// ErrNoEntries indicates no entries were supplied, or every entry was
	// filtered away before construction could proceed.
	ErrNoEntries = errors.New("phasediag: no entries to build from")

	// ErrMissingReference indicates a species with no pure-element entry
	// among the inputs; formation energies cannot be anchored for it.
	ErrMissingReference = errors.New("phasediag: no elemental reference entry for species")

	// ErrEmptyRow indicates an entry sharing no species with the basis;
	// its composition row would normalize by zero (caller error).
	ErrEmptyRow = errors.New("phasediag: entry shares no species with the basis")

	// ErrHullProvider indicates the configured hull backend failed or
	// violated the facet contract. Not retried.
	ErrHullProvider = errors.New("phasediag: hull provider failed")

	// ErrNoChemPots indicates BuildGrandPotential was called without
	// chemical potentials.
	ErrNoChemPots = errors.New("phasediag: no chemical potentials supplied")

	// ErrAllOpen indicates every basis species is open; the grand-
	// potential system has no closed subspace left.
	ErrAllOpen = errors.New("phasediag: every species is open")

	// ErrNoTerminals indicates BuildCompound was called without terminal
	// compositions.
	ErrNoTerminals = errors.New("phasediag: no terminal compositions supplied")

	// ErrNilOracle indicates BuildCompound was called without a reaction
	// oracle.
	ErrNilOracle = errors.New("phasediag: reaction oracle is nil")

	// ErrDegenerateBasis indicates the compound-terminal transform found
	// no non-coplanar species subset at any size.
	ErrDegenerateBasis = errors.New("phasediag: no non-coplanar species subset exists")

	// ErrSingularBasis indicates the compound-terminal basis matrix could
	// not be inverted (linearly dependent basis rows).
	ErrSingularBasis = errors.New("phasediag: terminal basis matrix is singular")
)
