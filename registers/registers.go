package registers

import "fmt"

// Addr identifies one of the chip's twelve registers. The value doubles as
// the 4-bit address carried in the bus frame.
type Addr uint8

const (
	// AddrST0 is the master register: N divider and charge pump current.
	AddrST0 Addr = iota

	// AddrST1 holds the FRAC value and RF1 output control.
	AddrST1

	// AddrST2 holds the MOD value and RF2 output control.
	AddrST2

	// AddrST3 holds the R divider, charge pump leakage, reference path
	// selection and device power down.
	AddrST3

	// AddrST4 holds lock detector control, reference buffer, charge pump
	// supply mode, VCO settings and output power control.
	AddrST4

	// AddrST5 holds the low power mode control bits.
	AddrST5

	// AddrST6 holds the VCO calibrator, manual VCO control and DSM settings.
	AddrST6

	// AddrST7 holds fast lock control and LD_SDO settings.
	AddrST7

	// AddrST8 holds the LDO voltage regulator settings.
	AddrST8

	// AddrST9 is reserved: test and initialization bits.
	AddrST9

	// AddrST10 reports VCO, lock detector and LDO status. Read only.
	AddrST10

	// AddrST11 reports the device ID. Read only.
	AddrST11
)

// NumRegisters is the number of addressable registers on the chip.
const NumRegisters = 12

// ReadOnly reports whether writes to the register are rejected by the chip.
func (a Addr) ReadOnly() bool {
	return a == AddrST10 || a == AddrST11
}

// Valid reports whether a names an existing register.
func (a Addr) Valid() bool {
	return a < NumRegisters
}

func (a Addr) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Addr(%d)", uint8(a))
	}
	return fmt.Sprintf("ST%d", uint8(a))
}

// Register is one typed view of a chip register. Implementations are
// ephemeral: populated right before a write or right after a read, never
// cached across bus transactions.
type Register interface {
	// Addr returns the register's bus address.
	Addr() Addr

	// Encode packs the struct's fields into a payload. Panics if a number
	// field exceeds its declared bit width.
	Encode() uint32

	// Decode unpacks a payload into the struct's fields.
	Decode(payload uint32)
}
