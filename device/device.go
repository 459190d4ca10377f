package device

import (
	"github.com/moffa90/go-stuw81300/protocol"
	"github.com/moffa90/go-stuw81300/registers"
)

// SupplyVoltage is the class of supply connected to the chip's pin 36. It
// gates the calibrator mode bits and the admissible VCO amplitude.
type SupplyVoltage uint8

const (
	// HighVoltage is a 5.0 V to 5.4 V supply.
	HighVoltage SupplyVoltage = iota

	// LowVoltage is a 3.3 V class supply (3.0 V to 3.6 V).
	LowVoltage
)

func (v SupplyVoltage) String() string {
	if v == LowVoltage {
		return "low voltage"
	}
	return "high voltage"
}

// ReferenceType is the reference clock connection. Values are the raw
// REF_BUFF_MODE codes written during initialization.
type ReferenceType uint32

const (
	// SingleEnded is a single-ended reference on pin 21.
	SingleEnded ReferenceType = 3

	// Differential is a differential reference across pins 20 and 21.
	Differential ReferenceType = 1

	// Crystal is a crystal oscillator across pins 20 and 21.
	Crystal ReferenceType = 2
)

func (t ReferenceType) String() string {
	switch t {
	case SingleEnded:
		return "single ended"
	case Differential:
		return "differential"
	case Crystal:
		return "crystal"
	}
	return "unknown"
}

// Reference frequency limits in Hz.
const (
	MinRefFrequency = 10e6
	MaxRefFrequency = 800e6
)

// Known silicon identities reported by the ST11 register.
const (
	// DeviceID1T identifies the STUW81300-1T and STUW81300-1TR.
	DeviceID1T uint32 = 0x804B

	// DeviceIDT identifies the STUW81300T and STUW81300TR.
	DeviceIDT uint32 = 0x8052
)

// Device drives one STuW81300 through a caller-supplied bus. It owns the
// bus and latch-enable line exclusively for its lifetime and keeps no
// register state of its own: every operation talks to the chip.
type Device struct {
	port   protocol.BusPort
	le     protocol.LatchPin
	config Config
}

// New creates a Device on the given bus port and latch-enable pin.
//
// refFreq is the reference clock in Hz and must lie in
// [MinRefFrequency, MaxRefFrequency]; it is validated once and fixed for
// the Device's lifetime. Supply voltage and reference type default to
// HighVoltage and SingleEnded.
//
// Example:
//
//	dev, err := device.New(bus, bus, 100e6,
//	    device.WithSupplyVoltage(device.LowVoltage),
//	    device.WithReferenceType(device.Crystal),
//	)
func New(port protocol.BusPort, le protocol.LatchPin, refFreq float32, opts ...Option) (*Device, error) {
	if port == nil {
		panic("device: bus port cannot be nil")
	}
	if le == nil {
		panic("device: latch pin cannot be nil")
	}
	if refFreq < MinRefFrequency || refFreq > MaxRefFrequency {
		return nil, &ReferenceFrequencyError{Frequency: refFreq}
	}

	cfg := defaultConfig()
	cfg.RefFrequency = refFreq
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Device{
		port:   port,
		le:     le,
		config: cfg,
	}, nil
}

// ReferenceFrequency returns the reference clock the Device was built with,
// in Hz.
func (d *Device) ReferenceFrequency() float32 {
	return d.config.RefFrequency
}

// readRaw reads one register's payload.
func (d *Device) readRaw(addr registers.Addr) (uint32, error) {
	payload, err := protocol.Exchange(d.port, d.le, addr, 0, protocol.Read)
	if err != nil {
		return 0, err
	}
	d.logDebug("register read", "register", addr.String(), "payload", payload)
	return payload, nil
}

// writeRaw writes one register's payload. The echoed response is discarded.
func (d *Device) writeRaw(addr registers.Addr, payload uint32) error {
	d.logDebug("register write", "register", addr.String(), "payload", payload)
	_, err := protocol.Exchange(d.port, d.le, addr, payload, protocol.Write)
	return err
}

// readRegister populates a register struct from the chip.
func (d *Device) readRegister(r registers.Register) error {
	payload, err := d.readRaw(r.Addr())
	if err != nil {
		return err
	}
	r.Decode(payload)
	return nil
}

// writeRegister sends a register struct to the chip.
func (d *Device) writeRegister(r registers.Register) error {
	return d.writeRaw(r.Addr(), r.Encode())
}
