package eos

import "errors"

var (
	// ErrNoRealRoot indicates the cubic has no physically valid root (Z > B) at the given state.
	ErrNoRealRoot = errors.New("eos: no real compressibility root")

	// ErrSinglePhase indicates the cubic has only one valid root, so no distinct vapor and liquid exist.
	ErrSinglePhase = errors.New("eos: single compressibility root")

	// ErrInvalidState indicates Z - B <= 0 or a logarithm argument outside its domain.
	ErrInvalidState = errors.New("eos: invalid state for fugacity")

	// ErrInvalidInput indicates a non-positive or non-finite temperature or pressure.
	ErrInvalidInput = errors.New("eos: temperature and pressure must be positive and finite")
)
