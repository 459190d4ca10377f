package device

import "fmt"

// ReferenceFrequencyError indicates a reference clock outside the chip's
// supported band.
type ReferenceFrequencyError struct {
	Frequency float32
}

func (e *ReferenceFrequencyError) Error() string {
	return fmt.Sprintf("reference frequency %g Hz out of range: must be between %g and %g Hz",
		e.Frequency, float32(MinRefFrequency), float32(MaxRefFrequency))
}

// UnknownDeviceError indicates that the chip reported a silicon identity
// this driver does not know. Initialization cannot proceed safely.
type UnknownDeviceError struct {
	ID uint32
}

func (e *UnknownDeviceError) Error() string {
	return fmt.Sprintf("unknown device identity 0x%04X: expected 0x%04X or 0x%04X",
		e.ID, DeviceID1T, DeviceIDT)
}

// ReferenceDividerError indicates an R divider outside 1..8191.
type ReferenceDividerError struct {
	R uint32
}

func (e *ReferenceDividerError) Error() string {
	return fmt.Sprintf("reference divider %d out of range: must be between 1 and 8191", e.R)
}

// ModRangeError indicates a fractional modulus outside 2..2097151.
type ModRangeError struct {
	Mod uint32
}

func (e *ModRangeError) Error() string {
	return fmt.Sprintf("MOD %d out of range: must be between 2 and 2097151", e.Mod)
}

// FracRangeError indicates a fractional numerator that is not below the
// currently programmed modulus. Set MOD first.
type FracRangeError struct {
	Frac uint32
	Mod  uint32
}

func (e *FracRangeError) Error() string {
	return fmt.Sprintf("FRAC %d out of range: must be between 0 and MOD-1 (MOD is %d, set MOD first)",
		e.Frac, e.Mod)
}

// ChargePumpError indicates a charge pump scale above the 5-bit maximum.
type ChargePumpError struct {
	Scale uint32
}

func (e *ChargePumpError) Error() string {
	return fmt.Sprintf("charge pump scale %d out of range: must be at most 31", e.Scale)
}

// CalibratorDivisionError indicates a VCO calibrator divider above the
// 9-bit maximum.
type CalibratorDivisionError struct {
	Division uint32
}

func (e *CalibratorDivisionError) Error() string {
	return fmt.Sprintf("calibrator division %d out of range: must be at most 511", e.Division)
}

// AmplitudeError indicates a VCO amplitude above the ceiling for the
// configured supply voltage class.
type AmplitudeError struct {
	Amplitude uint32
	Supply    SupplyVoltage
	Max       uint32
}

func (e *AmplitudeError) Error() string {
	return fmt.Sprintf("VCO amplitude %d out of range: %s supplies allow at most %d",
		e.Amplitude, e.Supply, e.Max)
}

// ManualConfigRequiredError indicates an integer-only divider ratio for
// which the composite frequency setter refuses to guess a calibrator
// configuration.
type ManualConfigRequiredError struct {
	N float32
}

func (e *ManualConfigRequiredError) Error() string {
	return fmt.Sprintf("divider ratio %g requires integer-only mode: configure the calibrator manually", e.N)
}
