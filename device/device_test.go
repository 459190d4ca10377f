package device

import (
	"errors"
	"testing"

	"github.com/moffa90/go-stuw81300/mock"
	"github.com/moffa90/go-stuw81300/registers"
	"github.com/moffa90/go-stuw81300/synth"
)

// newTestDevice returns a mock chip and a device running its PFD at 50 MHz
// (100 MHz reference fed in directly, divided by 2).
func newTestDevice(t *testing.T, opts ...Option) (*mock.Device, *Device) {
	t.Helper()

	chip := mock.New()
	dev, err := New(chip, chip, 100e6, opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := dev.SetReferenceClockPath(synth.RefPathDirect); err != nil {
		t.Fatalf("SetReferenceClockPath() error: %v", err)
	}
	if err := dev.SetReferenceClockDivider(2); err != nil {
		t.Fatalf("SetReferenceClockDivider() error: %v", err)
	}
	return chip, dev
}

func TestNewValidation(t *testing.T) {
	chip := mock.New()

	_, err := New(chip, chip, 5e6)
	var freqErr *ReferenceFrequencyError
	if !errors.As(err, &freqErr) {
		t.Errorf("5 MHz reference: expected *ReferenceFrequencyError, got %v", err)
	}

	_, err = New(chip, chip, 900e6)
	if !errors.As(err, &freqErr) {
		t.Errorf("900 MHz reference: expected *ReferenceFrequencyError, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("nil port should panic")
		}
	}()
	New(nil, chip, 100e6)
}

func TestDeviceID(t *testing.T) {
	chip := mock.NewWithIdentity(0x804B)
	dev, err := New(chip, chip, 100e6)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	id, err := dev.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID() error: %v", err)
	}
	if id != 0x804B {
		t.Errorf("DeviceID() = 0x%04X, want 0x804B", id)
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name         string
		id           uint32
		supply       SupplyVoltage
		wantCalb     bool
		wantRFOut3V3 bool
	}{
		{"1T revision on high voltage", 0x804B, HighVoltage, false, false},
		{"1T revision on low voltage", 0x804B, LowVoltage, false, true},
		{"T revision on high voltage", 0x8052, HighVoltage, false, false},
		{"T revision on low voltage", 0x8052, LowVoltage, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chip := mock.NewWithIdentity(tt.id)
			chip.SetRegister(registers.AddrST9, 0x123)

			dev, err := New(chip, chip, 100e6,
				WithSupplyVoltage(tt.supply),
				WithReferenceType(Crystal),
			)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if err := dev.Init(); err != nil {
				t.Fatalf("Init() error: %v", err)
			}

			if got := chip.Register(registers.AddrST9); got != 0 {
				t.Errorf("ST9 = 0x%07X, want 0 after initialization", got)
			}

			var st4 registers.ST4
			st4.Decode(chip.Register(registers.AddrST4))
			if st4.Calb3V3Mode0 != tt.wantCalb || st4.Calb3V3Mode1 != tt.wantCalb {
				t.Errorf("calibrator mode bits = (%v, %v), want %v",
					st4.Calb3V3Mode0, st4.Calb3V3Mode1, tt.wantCalb)
			}
			if st4.RFOut3V3 != tt.wantRFOut3V3 {
				t.Errorf("RF_OUT_3V3 = %v, want %v", st4.RFOut3V3, tt.wantRFOut3V3)
			}
			if st4.RefBuffMode != uint32(Crystal) {
				t.Errorf("REF_BUFF_MODE = %d, want %d", st4.RefBuffMode, Crystal)
			}
		})
	}
}

func TestInitUnknownDevice(t *testing.T) {
	chip := mock.NewWithIdentity(0xBEEF)
	chip.SetRegister(registers.AddrST4, 0x5A5A5A)

	dev, err := New(chip, chip, 100e6)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	err = dev.Init()
	var unknownErr *UnknownDeviceError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownDeviceError, got %v", err)
	}
	if unknownErr.ID != 0xBEEF {
		t.Errorf("ID = 0x%04X, want 0xBEEF", unknownErr.ID)
	}
	// The power settings must be untouched.
	if got := chip.Register(registers.AddrST4); got != 0x5A5A5A {
		t.Errorf("ST4 = 0x%07X, should not change on unknown silicon", got)
	}
}

func TestPFDFrequency(t *testing.T) {
	_, dev := newTestDevice(t)

	pfd, err := dev.PFDFrequency()
	if err != nil {
		t.Fatalf("PFDFrequency() error: %v", err)
	}
	if pfd != 50e6 {
		t.Errorf("PFDFrequency() = %g, want 50 MHz", pfd)
	}
}

func TestSetReferenceClockPathValidation(t *testing.T) {
	_, dev := newTestDevice(t)

	err := dev.SetReferenceClockPath(synth.RefPathDoubled)
	var pathErr *synth.ReferencePathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("doubling a 100 MHz reference should fail, got %v", err)
	}

	path, err := dev.ReferenceClockPath()
	if err != nil {
		t.Fatalf("ReferenceClockPath() error: %v", err)
	}
	if path != synth.RefPathDirect {
		t.Errorf("path = %s, should stay direct after rejected change", path)
	}
}

func TestSetReferenceClockDividerValidation(t *testing.T) {
	_, dev := newTestDevice(t)

	var divErr *ReferenceDividerError
	if err := dev.SetReferenceClockDivider(0); !errors.As(err, &divErr) {
		t.Errorf("R=0: expected *ReferenceDividerError, got %v", err)
	}
	if err := dev.SetReferenceClockDivider(8192); !errors.As(err, &divErr) {
		t.Errorf("R=8192: expected *ReferenceDividerError, got %v", err)
	}
	if err := dev.SetReferenceClockDivider(8191); err != nil {
		t.Errorf("R=8191 should be accepted: %v", err)
	}
}

func TestSetReferenceClockDividerPreservesNeighbors(t *testing.T) {
	chip, dev := newTestDevice(t)

	var st3 registers.ST3
	st3.Decode(chip.Register(registers.AddrST3))
	st3.CPLeak = 17
	st3.DnsplitEn = true
	chip.SetRegister(registers.AddrST3, st3.Encode())

	if err := dev.SetReferenceClockDivider(5); err != nil {
		t.Fatalf("SetReferenceClockDivider() error: %v", err)
	}

	st3.Decode(chip.Register(registers.AddrST3))
	if st3.R != 5 {
		t.Errorf("R = %d, want 5", st3.R)
	}
	if st3.CPLeak != 17 || !st3.DnsplitEn {
		t.Error("unrelated ST3 fields must survive a divider update")
	}
}

func TestSetOutputFrequencyRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		target     float32
		wantN      uint32
		wantFrac   uint32
		wantPLLSel bool
	}{
		{"7625 MHz", 7625e6, 76, 524287, true},
		{"3151 MHz", 3151e6, 63, 41943, false},
		{"8 GHz", 8e9, 80, 0, true},
		{"arbitrary fractional target", 3150123456.7, 63, 5183, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chip, dev := newTestDevice(t)

			if err := dev.SetOutputFrequency(tt.target); err != nil {
				t.Fatalf("SetOutputFrequency() error: %v", err)
			}

			var (
				st0 registers.ST0
				st1 registers.ST1
				st2 registers.ST2
				st6 registers.ST6
			)
			st0.Decode(chip.Register(registers.AddrST0))
			st1.Decode(chip.Register(registers.AddrST1))
			st2.Decode(chip.Register(registers.AddrST2))
			st6.Decode(chip.Register(registers.AddrST6))

			if st0.N != tt.wantN {
				t.Errorf("N = %d, want %d", st0.N, tt.wantN)
			}
			if st1.Frac != tt.wantFrac {
				t.Errorf("FRAC = %d, want %d", st1.Frac, tt.wantFrac)
			}
			if st2.Mod != synth.MaxMod {
				t.Errorf("MOD = %d, want %d", st2.Mod, synth.MaxMod)
			}
			if st1.PLLSel != tt.wantPLLSel {
				t.Errorf("PLL_SEL = %v, want %v", st1.PLLSel, tt.wantPLLSel)
			}
			if !st6.Dithering {
				t.Error("dithering should be enabled by the solver")
			}

			got, err := dev.OutputFrequency()
			if err != nil {
				t.Fatalf("OutputFrequency() error: %v", err)
			}
			if got != tt.target {
				t.Errorf("OutputFrequency() = %g, want %g", got, tt.target)
			}
		})
	}
}

func TestSetOutputFrequencyCalibrator(t *testing.T) {
	_, dev := newTestDevice(t)

	if err := dev.SetOutputFrequency(8e9); err != nil {
		t.Fatalf("SetOutputFrequency() error: %v", err)
	}

	div, err := dev.CalibratorDivision()
	if err != nil {
		t.Fatalf("CalibratorDivision() error: %v", err)
	}
	if div != 200 {
		t.Errorf("calibrator division = %d, want 200", div)
	}

	calFreq, err := dev.CalibratorFrequency()
	if err != nil {
		t.Fatalf("CalibratorFrequency() error: %v", err)
	}
	if calFreq != 250e3 {
		t.Errorf("calibrator frequency = %g, want 250 kHz", calFreq)
	}
}

func TestSetOutputFrequencyVCalbMode(t *testing.T) {
	tests := []struct {
		name   string
		supply SupplyVoltage
		target float32
		want   bool
	}{
		{"high voltage below threshold", HighVoltage, 3151e6, false},
		{"high voltage above threshold", HighVoltage, 7625e6, true},
		{"low voltage below threshold", LowVoltage, 3151e6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chip, dev := newTestDevice(t, WithSupplyVoltage(tt.supply))

			if err := dev.SetOutputFrequency(tt.target); err != nil {
				t.Fatalf("SetOutputFrequency() error: %v", err)
			}

			var st4 registers.ST4
			st4.Decode(chip.Register(registers.AddrST4))
			if st4.VCalbMode != tt.want {
				t.Errorf("VCALB_MODE = %v, want %v", st4.VCalbMode, tt.want)
			}
		})
	}
}

func TestSetDividerRatioValidatesAgainstDSMOrder(t *testing.T) {
	_, dev := newTestDevice(t)

	if err := dev.SetDSMOrder(synth.FourthOrder); err != nil {
		t.Fatalf("SetDSMOrder() error: %v", err)
	}

	// 28 is fine for the default third order but not for fourth.
	err := dev.SetDividerRatio(28)
	var rangeErr *synth.DividerOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *DividerOutOfRangeError, got %v", err)
	}
	if rangeErr.Order != synth.FourthOrder {
		t.Errorf("Order = %s, want fourth order", rangeErr.Order)
	}
}

func TestModAndFracValidation(t *testing.T) {
	_, dev := newTestDevice(t)

	var modErr *ModRangeError
	if err := dev.SetMod(1); !errors.As(err, &modErr) {
		t.Errorf("MOD=1: expected *ModRangeError, got %v", err)
	}
	if err := dev.SetMod(synth.MaxMod + 1); !errors.As(err, &modErr) {
		t.Errorf("MOD over range: expected *ModRangeError, got %v", err)
	}

	if err := dev.SetMod(1000); err != nil {
		t.Fatalf("SetMod() error: %v", err)
	}
	var fracErr *FracRangeError
	if err := dev.SetFrac(1000); !errors.As(err, &fracErr) {
		t.Errorf("FRAC=MOD: expected *FracRangeError, got %v", err)
	}
	if err := dev.SetFrac(999); err != nil {
		t.Errorf("FRAC=MOD-1 should be accepted: %v", err)
	}
}

func TestPLLPathMapping(t *testing.T) {
	chip, dev := newTestDevice(t)

	// The raw bit and the readback run opposite ways; the mapping is what
	// real hardware does.
	if err := dev.SetPLLPath(synth.PLLPathHalved); err != nil {
		t.Fatalf("SetPLLPath() error: %v", err)
	}
	var st1 registers.ST1
	st1.Decode(chip.Register(registers.AddrST1))
	if !st1.PLLSel {
		t.Error("halved path should set PLL_SEL")
	}
	path, err := dev.PLLPath()
	if err != nil {
		t.Fatalf("PLLPath() error: %v", err)
	}
	if path != synth.PLLPathDirect {
		t.Errorf("PLLPath() = %s, want direct while PLL_SEL is set", path)
	}

	if err := dev.SetPLLPath(synth.PLLPathDirect); err != nil {
		t.Fatalf("SetPLLPath() error: %v", err)
	}
	st1.Decode(chip.Register(registers.AddrST1))
	if st1.PLLSel {
		t.Error("direct path should clear PLL_SEL")
	}
}

func TestChargePump(t *testing.T) {
	_, dev := newTestDevice(t)

	var cpErr *ChargePumpError
	if err := dev.SetChargePump(32); !errors.As(err, &cpErr) {
		t.Errorf("scale 32: expected *ChargePumpError, got %v", err)
	}

	if err := dev.SetChargePump(21); err != nil {
		t.Fatalf("SetChargePump() error: %v", err)
	}
	scale, err := dev.ChargePump()
	if err != nil {
		t.Fatalf("ChargePump() error: %v", err)
	}
	if scale != 21 {
		t.Errorf("ChargePump() = %d, want 21", scale)
	}
}

func TestPFDDelay(t *testing.T) {
	chip, dev := newTestDevice(t)

	if err := dev.SetPFDDelayMode(VCODivDelay); err != nil {
		t.Fatalf("SetPFDDelayMode() error: %v", err)
	}
	mode, err := dev.PFDDelayMode()
	if err != nil {
		t.Fatalf("PFDDelayMode() error: %v", err)
	}
	if mode != VCODivDelay {
		t.Errorf("PFDDelayMode() = %d, want VCODivDelay", mode)
	}

	// Code 3 is reserved; a chip reporting it is misbehaving.
	var st3 registers.ST3
	st3.Decode(chip.Register(registers.AddrST3))
	st3.PFDDelMode = 3
	chip.SetRegister(registers.AddrST3, st3.Encode())
	if _, err := dev.PFDDelayMode(); err == nil {
		t.Error("reserved mode code should be rejected")
	}

	if err := dev.SetPFDDelay(PFDDelayTwoFive); err != nil {
		t.Fatalf("SetPFDDelay() error: %v", err)
	}
	delay, err := dev.PFDDelay()
	if err != nil {
		t.Fatalf("PFDDelay() error: %v", err)
	}
	if delay != PFDDelayTwoFive {
		t.Errorf("PFDDelay() = %d, want PFDDelayTwoFive", delay)
	}
}

func TestSetVCOAmplitude(t *testing.T) {
	var ampErr *AmplitudeError

	_, dev := newTestDevice(t)
	if err := dev.SetVCOAmplitude(7); err != nil {
		t.Errorf("amplitude 7 on high voltage should be accepted: %v", err)
	}
	if err := dev.SetVCOAmplitude(8); !errors.As(err, &ampErr) {
		t.Errorf("amplitude 8: expected *AmplitudeError, got %v", err)
	}

	_, dev = newTestDevice(t, WithSupplyVoltage(LowVoltage))
	if err := dev.SetVCOAmplitude(2); err != nil {
		t.Errorf("amplitude 2 on low voltage should be accepted: %v", err)
	}
	if err := dev.SetVCOAmplitude(3); !errors.As(err, &ampErr) {
		t.Errorf("amplitude 3 on low voltage: expected *AmplitudeError, got %v", err)
	}
}

func TestSetCalibratorDivisionValidation(t *testing.T) {
	_, dev := newTestDevice(t)

	var calErr *CalibratorDivisionError
	if err := dev.SetCalibratorDivision(512); !errors.As(err, &calErr) {
		t.Errorf("division 512: expected *CalibratorDivisionError, got %v", err)
	}
	if err := dev.SetCalibratorDivision(511); err != nil {
		t.Errorf("division 511 should be accepted: %v", err)
	}
}

func TestStatusFlags(t *testing.T) {
	chip, dev := newTestDevice(t)

	locked, err := dev.IsLocked()
	if err != nil || locked {
		t.Errorf("IsLocked() = (%v, %v), want unlocked on a cleared chip", locked, err)
	}

	st10 := registers.ST10{
		LockDet:          true,
		RegDigStartup:    true,
		RegRefStartup:    true,
		RegRFStartup:     true,
		RegVCO4V5Startup: true,
	}
	chip.SetRegister(registers.AddrST10, st10.Encode())

	if locked, _ = dev.IsLocked(); !locked {
		t.Error("IsLocked() should report the lock detector")
	}
	startup, err := dev.IsStartup()
	if err != nil || !startup {
		t.Errorf("IsStartup() = (%v, %v), want all cores up", startup, err)
	}
	ocp, err := dev.IsOCP()
	if err != nil || ocp {
		t.Errorf("IsOCP() = (%v, %v), want no overcurrent", ocp, err)
	}

	st10.RegRefStartup = false
	st10.RegRFOCP = true
	chip.SetRegister(registers.AddrST10, st10.Encode())

	if startup, _ = dev.IsStartup(); startup {
		t.Error("IsStartup() should fail with a core down")
	}
	if ocp, _ = dev.IsOCP(); !ocp {
		t.Error("IsOCP() should report any overcurrent flag")
	}
}

func TestDumpRegisters(t *testing.T) {
	chip, dev := newTestDevice(t)
	chip.SetRegister(registers.AddrST8, 3)

	dump, err := dev.DumpRegisters()
	if err != nil {
		t.Fatalf("DumpRegisters() error: %v", err)
	}
	if len(dump) != registers.NumRegisters {
		t.Errorf("dump has %d entries, want %d", len(dump), registers.NumRegisters)
	}
	if dump[registers.AddrST8] != 3 {
		t.Errorf("ST8 = 0x%07X, want 3", dump[registers.AddrST8])
	}
	if dump[registers.AddrST11] != 0x8052 {
		t.Errorf("ST11 = 0x%07X, want the mock identity", dump[registers.AddrST11])
	}
}
