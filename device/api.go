package device

import (
	"fmt"

	"github.com/moffa90/go-stuw81300/registers"
	"github.com/moffa90/go-stuw81300/synth"
)

// PFDDelayMode selects which divider chain the PFD delay is applied to.
// Values are the raw PFD_DEL_MODE codes. VCODivDelay is the recommended
// setting.
type PFDDelayMode uint32

const (
	NoDelay PFDDelayMode = iota
	VCODivDelay
	RefDivDelay
)

// PFDDelay selects the PFD delay and the matching charge pump offset.
// Values are the raw PFD_DEL codes.
type PFDDelay uint32

const (
	// PFDDelayDefault is 1.2 ns with no charge pump offset.
	PFDDelayDefault PFDDelay = iota

	// PFDDelayOneNine is 1.9 ns at 0.25*Icp.
	PFDDelayOneNine

	// PFDDelayTwoFive is 2.5 ns at 0.5*Icp.
	PFDDelayTwoFive

	// PFDDelayThreeZero is 3.0 ns at 0.75*Icp.
	PFDDelayThreeZero
)

// initValue is the payload written to the reserved ST9 register during
// initialization.
const initValue = 0

// DeviceID reads the silicon identity register, either DeviceID1T or
// DeviceIDT on known parts.
func (d *Device) DeviceID() (uint32, error) {
	return d.readRaw(registers.AddrST11)
}

// Init initializes the chip: it writes the reserved initialization
// register, then applies the supply- and revision-dependent power settings.
//
// The two known silicon identities need different calibrator supply
// handling; anything else aborts with *UnknownDeviceError before any power
// setting is touched.
func (d *Device) Init() error {
	if err := d.writeRaw(registers.AddrST9, initValue); err != nil {
		return fmt.Errorf("write initialization register: %w", err)
	}

	id, err := d.DeviceID()
	if err != nil {
		return fmt.Errorf("read device identity: %w", err)
	}

	lowVoltage := d.config.SupplyVoltage == LowVoltage

	var st4 registers.ST4
	if err := d.readRegister(&st4); err != nil {
		return err
	}
	switch id {
	case DeviceID1T:
		st4.Calb3V3Mode1 = false
		st4.Calb3V3Mode0 = false
	case DeviceIDT:
		st4.Calb3V3Mode1 = lowVoltage
		st4.Calb3V3Mode0 = lowVoltage
	default:
		return &UnknownDeviceError{ID: id}
	}
	st4.RFOut3V3 = lowVoltage
	st4.RefBuffMode = uint32(d.config.ReferenceType)

	if err := d.writeRegister(&st4); err != nil {
		return err
	}

	d.logInfo("device initialized",
		"identity", fmt.Sprintf("0x%04X", id),
		"supply", d.config.SupplyVoltage.String(),
		"reference", d.config.ReferenceType.String(),
	)
	return nil
}

// SetReferenceClockPath selects how the reference clock is scaled before
// the R divider. Together with SetReferenceClockDivider this controls the
// PFD frequency.
//
// The selection is validated against the reference frequency band and
// signaling type before any register is touched.
func (d *Device) SetReferenceClockPath(path synth.ReferenceClockPath) error {
	differential := d.config.ReferenceType == Differential
	if err := synth.ValidateReferencePath(d.config.RefFrequency, path, differential); err != nil {
		return err
	}

	var st3 registers.ST3
	if err := d.readRegister(&st3); err != nil {
		return err
	}
	st3.RefPathSel = uint32(path)
	return d.writeRegister(&st3)
}

// ReferenceClockPath reads the currently selected reference path.
func (d *Device) ReferenceClockPath() (synth.ReferenceClockPath, error) {
	var st3 registers.ST3
	if err := d.readRegister(&st3); err != nil {
		return 0, err
	}
	return synth.ReferenceClockPath(st3.RefPathSel), nil
}

// SetReferenceClockDivider programs the R divider feeding the PFD. R must
// be between 1 and 8191.
func (d *Device) SetReferenceClockDivider(r uint32) error {
	if r < 1 || r > synth.MaxR {
		return &ReferenceDividerError{R: r}
	}
	var st3 registers.ST3
	if err := d.readRegister(&st3); err != nil {
		return err
	}
	st3.R = r
	return d.writeRegister(&st3)
}

// PFDFrequency reads the reference path settings and returns the
// phase-frequency detector frequency in Hz.
func (d *Device) PFDFrequency() (float32, error) {
	var st3 registers.ST3
	if err := d.readRegister(&st3); err != nil {
		return 0, err
	}
	path := synth.ReferenceClockPath(st3.RefPathSel)
	return synth.PFDFrequency(d.config.RefFrequency, path, st3.R), nil
}

// OutputFrequency reads the divider registers and returns the current RF1
// output frequency in Hz.
func (d *Device) OutputFrequency() (float32, error) {
	var (
		st0 registers.ST0
		st1 registers.ST1
		st2 registers.ST2
		st6 registers.ST6
	)
	if err := d.readRegister(&st0); err != nil {
		return 0, err
	}
	if err := d.readRegister(&st1); err != nil {
		return 0, err
	}
	if err := d.readRegister(&st2); err != nil {
		return 0, err
	}
	if err := d.readRegister(&st6); err != nil {
		return 0, err
	}
	pfd, err := d.PFDFrequency()
	if err != nil {
		return 0, err
	}
	return synth.OutputFrequency(pfd, st0.N, st1.Frac, st2.Mod, st6.Dithering, st1.PLLSel), nil
}

// SetDithering enables or disables DSM dithering. Dithering spreads the
// fractional spur energy over a wider bandwidth at the cost of a small
// deterministic frequency offset.
func (d *Device) SetDithering(active bool) error {
	var st6 registers.ST6
	if err := d.readRegister(&st6); err != nil {
		return err
	}
	st6.Dithering = active
	return d.writeRegister(&st6)
}

// SetDSMOrder programs the delta-sigma modulator order. Only meaningful
// when the divider ratio has a fractional part; ThirdOrder is recommended.
func (d *Device) SetDSMOrder(order synth.DSMOrder) error {
	var st6 registers.ST6
	if err := d.readRegister(&st6); err != nil {
		return err
	}
	st6.DSMOrder = uint32(order)
	return d.writeRegister(&st6)
}

// SetMod programs the fractional modulus MOD, between 2 and 2097151.
func (d *Device) SetMod(mod uint32) error {
	if mod < synth.MinMod || mod > synth.MaxMod {
		return &ModRangeError{Mod: mod}
	}
	var st2 registers.ST2
	if err := d.readRegister(&st2); err != nil {
		return err
	}
	st2.Mod = mod
	return d.writeRegister(&st2)
}

// SetFrac programs the fractional numerator FRAC. FRAC must be below the
// modulus currently on the chip, so set MOD first.
func (d *Device) SetFrac(frac uint32) error {
	var st2 registers.ST2
	if err := d.readRegister(&st2); err != nil {
		return err
	}
	if frac >= st2.Mod {
		return &FracRangeError{Frac: frac, Mod: st2.Mod}
	}
	var st1 registers.ST1
	if err := d.readRegister(&st1); err != nil {
		return err
	}
	st1.Frac = frac
	return d.writeRegister(&st1)
}

// SetDividerRatio programs the divider registers for the ratio n,
// maximizing MOD to minimize the frequency error. The ratio is validated
// against the DSM order currently on the chip before anything is written.
//
// ST0, ST1 and ST2 are written in sequence; a failure partway through
// leaves the chip partially updated.
func (d *Device) SetDividerRatio(n float32) error {
	var st6 registers.ST6
	if err := d.readRegister(&st6); err != nil {
		return err
	}
	if err := synth.ValidateNRange(synth.DSMOrder(st6.DSMOrder), n); err != nil {
		return err
	}
	nInt, frac, err := synth.SolveDivider(n, st6.Dithering)
	if err != nil {
		return err
	}

	var (
		st0 registers.ST0
		st1 registers.ST1
		st2 registers.ST2
	)
	if err := d.readRegister(&st0); err != nil {
		return err
	}
	if err := d.readRegister(&st1); err != nil {
		return err
	}
	if err := d.readRegister(&st2); err != nil {
		return err
	}

	st0.N = nInt
	st1.Frac = frac
	st2.Mod = synth.MaxMod

	if err := d.writeRegister(&st0); err != nil {
		return err
	}
	if err := d.writeRegister(&st1); err != nil {
		return err
	}
	return d.writeRegister(&st2)
}

// SetPLLPath selects the signal path from the VCO into the PLL. Use
// PLLPathHalved for output frequencies above 6 GHz.
func (d *Device) SetPLLPath(path synth.PLLPath) error {
	var st1 registers.ST1
	if err := d.readRegister(&st1); err != nil {
		return err
	}
	// Chip-verified inversion: the Halved path is selected by setting
	// PLL_SEL, which also routes the output through the doubled branch.
	st1.PLLSel = path == synth.PLLPathHalved
	return d.writeRegister(&st1)
}

// PLLPath reads the currently selected PLL signal path.
func (d *Device) PLLPath() (synth.PLLPath, error) {
	var st1 registers.ST1
	if err := d.readRegister(&st1); err != nil {
		return 0, err
	}
	if st1.PLLSel {
		return synth.PLLPathDirect, nil
	}
	return synth.PLLPathHalved, nil
}

// SetOutputFrequency solves for and programs the desired RF1 output
// frequency in Hz.
//
// There are infinitely many register solutions for a given frequency; the
// strategy here minimizes spurs by maximizing FRAC and MOD at a fixed
// ratio and enabling dithering, accepting a small frequency error. The
// calibrator divider is set for the maximum 250 kHz calibration rate.
//
// The solve can fail if the computed divider ratio is not feasible for the
// configured DSM order; changing the DSM order or the reference divider
// network may be necessary. Integer-only ratios (above 512) require manual
// calibrator configuration and are rejected with
// *ManualConfigRequiredError.
func (d *Device) SetOutputFrequency(f float32) error {
	if err := d.SetDithering(true); err != nil {
		return err
	}
	pfd, err := d.PFDFrequency()
	if err != nil {
		return err
	}

	path, n := synth.SolveOutputFrequency(f, pfd)
	if err := d.SetPLLPath(path); err != nil {
		return err
	}
	if err := d.SetDividerRatio(n); err != nil {
		return err
	}

	if n > synth.IntegerOnlyN {
		return &ManualConfigRequiredError{N: n}
	}
	if err := d.SetCalibratorDivision(synth.CalibratorDivision(pfd)); err != nil {
		return err
	}

	var st4 registers.ST4
	if err := d.readRegister(&st4); err != nil {
		return err
	}
	switch d.config.SupplyVoltage {
	case LowVoltage:
		st4.VCalbMode = true
	case HighVoltage:
		st4.VCalbMode = f > 4500e6
	}
	if err := d.writeRegister(&st4); err != nil {
		return err
	}

	d.logInfo("output frequency set",
		"target_hz", f,
		"pll_path", path.String(),
		"divider_ratio", n,
	)
	return nil
}

// SetPFDDelayMode selects the divider chain the PFD delay applies to.
// VCODivDelay is recommended.
func (d *Device) SetPFDDelayMode(mode PFDDelayMode) error {
	var st3 registers.ST3
	if err := d.readRegister(&st3); err != nil {
		return err
	}
	st3.PFDDelMode = uint32(mode)
	return d.writeRegister(&st3)
}

// PFDDelayMode reads the configured PFD delay mode.
func (d *Device) PFDDelayMode() (PFDDelayMode, error) {
	var st3 registers.ST3
	if err := d.readRegister(&st3); err != nil {
		return 0, err
	}
	if st3.PFDDelMode > uint32(RefDivDelay) {
		return 0, fmt.Errorf("reserved PFD delay mode code %d", st3.PFDDelMode)
	}
	return PFDDelayMode(st3.PFDDelMode), nil
}

// SetPFDDelay programs the PFD delay. PFDDelayDefault is recommended.
func (d *Device) SetPFDDelay(delay PFDDelay) error {
	var st0 registers.ST0
	if err := d.readRegister(&st0); err != nil {
		return err
	}
	st0.PFDDel = uint32(delay)
	return d.writeRegister(&st0)
}

// PFDDelay reads the configured PFD delay.
func (d *Device) PFDDelay() (PFDDelay, error) {
	var st0 registers.ST0
	if err := d.readRegister(&st0); err != nil {
		return 0, err
	}
	return PFDDelay(st0.PFDDel), nil
}

// SetChargePump programs the charge pump scaling factor, 0..31 times the
// minimum current.
func (d *Device) SetChargePump(scale uint32) error {
	if scale > 31 {
		return &ChargePumpError{Scale: scale}
	}
	var st0 registers.ST0
	if err := d.readRegister(&st0); err != nil {
		return err
	}
	st0.CPSel = scale
	return d.writeRegister(&st0)
}

// ChargePump reads the charge pump scaling factor.
func (d *Device) ChargePump() (uint32, error) {
	var st0 registers.ST0
	if err := d.readRegister(&st0); err != nil {
		return 0, err
	}
	return st0.CPSel, nil
}

// SetCalibratorDivision programs the VCO calibrator division factor,
// 0..511.
func (d *Device) SetCalibratorDivision(div uint32) error {
	if div > 511 {
		return &CalibratorDivisionError{Division: div}
	}
	var st6 registers.ST6
	if err := d.readRegister(&st6); err != nil {
		return err
	}
	st6.CalDiv = div
	return d.writeRegister(&st6)
}

// CalibratorDivision reads the VCO calibrator division factor.
func (d *Device) CalibratorDivision() (uint32, error) {
	var st6 registers.ST6
	if err := d.readRegister(&st6); err != nil {
		return 0, err
	}
	return st6.CalDiv, nil
}

// CalibratorFrequency returns the VCO calibrator clock in Hz.
func (d *Device) CalibratorFrequency() (float32, error) {
	var st6 registers.ST6
	if err := d.readRegister(&st6); err != nil {
		return 0, err
	}
	pfd, err := d.PFDFrequency()
	if err != nil {
		return 0, err
	}
	return synth.CalibratorFrequency(pfd, st6.CalDiv), nil
}

// SetVCOAmplitude programs the VCO amplitude. Valid settings are 0..2 on a
// LowVoltage supply and 0..7 on a HighVoltage supply. For phase noise's
// sake, run at the maximum the supply allows; lower settings save power.
func (d *Device) SetVCOAmplitude(amplitude uint32) error {
	max := uint32(7)
	if d.config.SupplyVoltage == LowVoltage {
		max = 2
	}
	if amplitude > max {
		return &AmplitudeError{Amplitude: amplitude, Supply: d.config.SupplyVoltage, Max: max}
	}
	var st4 registers.ST4
	if err := d.readRegister(&st4); err != nil {
		return err
	}
	st4.VCOAmp = amplitude
	return d.writeRegister(&st4)
}

// IsLocked reports whether the PLL lock detector is asserted.
func (d *Device) IsLocked() (bool, error) {
	var st10 registers.ST10
	if err := d.readRegister(&st10); err != nil {
		return false, err
	}
	return st10.LockDet, nil
}

// IsStartup reports whether all regulator cores started up properly.
func (d *Device) IsStartup() (bool, error) {
	var st10 registers.ST10
	if err := d.readRegister(&st10); err != nil {
		return false, err
	}
	return st10.RegDigStartup &&
		st10.RegRefStartup &&
		st10.RegRFStartup &&
		st10.RegVCO4V5Startup, nil
}

// IsOCP reports whether any regulator core raised an overcurrent flag.
func (d *Device) IsOCP() (bool, error) {
	var st10 registers.ST10
	if err := d.readRegister(&st10); err != nil {
		return false, err
	}
	return st10.RegDigOCP ||
		st10.RegRefOCP ||
		st10.RegRFOCP ||
		st10.RegVCO4V5OCP, nil
}

// DumpRegisters reads every register and returns the raw payloads, keyed
// by address. Useful for diagnostics.
func (d *Device) DumpRegisters() (map[registers.Addr]uint32, error) {
	dump := make(map[registers.Addr]uint32, registers.NumRegisters)
	for addr := registers.AddrST0; addr <= registers.AddrST11; addr++ {
		payload, err := d.readRaw(addr)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", addr, err)
		}
		dump[addr] = payload
	}
	return dump, nil
}
