package synth

import "fmt"

// DividerOutOfRangeError indicates a divider ratio outside the admissible
// interval for the configured DSM order.
type DividerOutOfRangeError struct {
	Order DSMOrder
	N     float32
	Min   float32
	Max   float32
}

func (e *DividerOutOfRangeError) Error() string {
	return fmt.Sprintf("divider ratio %g out of range: %s DSM requires %g <= N <= %g",
		e.N, e.Order, e.Min, e.Max)
}

// InvalidDividerRatioError indicates a divider ratio below the chip's
// absolute minimum.
type InvalidDividerRatioError struct {
	N float32
}

func (e *InvalidDividerRatioError) Error() string {
	return fmt.Sprintf("divider ratio %g invalid: must be at least %d", e.N, MinN)
}

// IntegerOnlyError indicates a fractional divider ratio at or above the
// integer-only threshold.
type IntegerOnlyError struct {
	N float32
}

func (e *IntegerOnlyError) Error() string {
	return fmt.Sprintf("divider ratio %g invalid: ratios of %d and above cannot have a fractional part",
		e.N, IntegerOnlyN)
}

// ReferencePathError indicates a reference path selection that is
// incompatible with the reference frequency band or signaling type.
type ReferencePathError struct {
	RefFreq float32
	Path    ReferenceClockPath
	Reason  string
}

func (e *ReferencePathError) Error() string {
	return fmt.Sprintf("reference path %s rejected for %g Hz reference: %s", e.Path, e.RefFreq, e.Reason)
}
