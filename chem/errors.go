package chem

import "errors"

var (
	// ErrEmptyComposition indicates a composition with no species above the
	// amount tolerance.
	ErrEmptyComposition = errors.New("chem: composition has no species above tolerance")
	// ErrNegativeAmount indicates a negative species amount.
	ErrNegativeAmount = errors.New("chem: species amount must be non-negative")
	// ErrNonFiniteAmount indicates a NaN or ±Inf species amount.
	ErrNonFiniteAmount = errors.New("chem: species amount must be finite")
	// ErrNilEntry indicates a nil Entry was passed where one is required.
	ErrNilEntry = errors.New("chem: entry is nil")
)
