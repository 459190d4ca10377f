package mock

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/moffa90/go-stuw81300/protocol"
	"github.com/moffa90/go-stuw81300/registers"
)

// ErrLatchIdle is returned when a transfer arrives while the latch-enable
// line is high. A real chip ignores the clock in that state.
var ErrLatchIdle = errors.New("mock: transfer with latch enable high")

// Device is an in-memory STuW81300. It satisfies protocol.BusPort and
// protocol.LatchPin; pass the same instance as both.
//
// The zero value is not usable, call New or NewWithIdentity.
type Device struct {
	regs     [registers.NumRegisters]uint32
	latchLow bool

	// TransferErr, when set, is returned by every Transfer call.
	TransferErr error

	// LatchErr, when set, is returned by every SetLow and SetHigh call.
	LatchErr error
}

// New returns a mock reporting the STUW81300T identity (0x8052) with all
// other registers cleared, matching a chip fresh out of reset.
func New() *Device {
	return NewWithIdentity(0x8052)
}

// NewWithIdentity returns a mock reporting the given silicon identity.
func NewWithIdentity(id uint32) *Device {
	m := &Device{}
	m.regs[registers.AddrST11] = id
	return m
}

// Register returns the stored payload of one register.
func (m *Device) Register(addr registers.Addr) uint32 {
	return m.regs[addr]
}

// SetRegister stores a payload directly, bypassing the bus. Useful for
// arranging status register contents in tests.
func (m *Device) SetRegister(addr registers.Addr, payload uint32) {
	m.regs[addr] = payload
}

// SetLow drives the latch-enable line low, arming the chip for a frame.
func (m *Device) SetLow() error {
	if m.LatchErr != nil {
		return m.LatchErr
	}
	m.latchLow = true
	return nil
}

// SetHigh releases the latch-enable line, latching the last frame.
func (m *Device) SetHigh() error {
	if m.LatchErr != nil {
		return m.LatchErr
	}
	m.latchLow = false
	return nil
}

// Transfer decodes one 4-byte frame and answers it the way the chip
// would: reads clock out the stored payload, writes apply the payload and
// clock out zeros.
func (m *Device) Transfer(tx, rx []byte) error {
	if m.TransferErr != nil {
		return m.TransferErr
	}
	if !m.latchLow {
		return ErrLatchIdle
	}
	if len(tx) != protocol.FrameSize || len(rx) != protocol.FrameSize {
		return fmt.Errorf("mock: frame must be %d bytes, got tx=%d rx=%d",
			protocol.FrameSize, len(tx), len(rx))
	}

	cmd := binary.BigEndian.Uint32(tx)
	read := cmd>>31 == 1
	addr := registers.Addr(cmd >> 27 & 0xF)
	payload := cmd & protocol.MaxPayload

	var response uint32
	if read {
		response = m.regs[addr]
	} else {
		m.regs[addr] = payload
	}
	binary.BigEndian.PutUint32(rx, response)
	return nil
}
