// Package registers describes the STuW81300 register map and converts between
// typed register structs and the raw 32-bit payloads the chip speaks.
//
// # Register Map
//
// The chip exposes twelve registers, ST0 through ST11. ST0..ST9 are
// read/write, ST10 (status) and ST11 (device ID) are read only. Each register
// packs a set of named fields into the low 27 bits of a 32-bit payload. A
// field is either a flag (a single bit) or a number (a contiguous run of up
// to 21 bits at a fixed offset). Fields never overlap.
//
// # Layouts and the Codec
//
// Every register struct declares its bit layout once, as a table of field
// descriptors bound to the struct's members. A single generic encode routine
// and a single generic decode routine consume that table, so the exact
// shift-and-mask logic lives in one place:
//
//	st0 := &registers.ST0{N: 76, CPSel: 31}
//	payload := st0.Encode()
//
//	var back registers.ST0
//	back.Decode(payload)
//
// Encode and Decode are lossless for all in-range field values: decoding an
// encoded register always reproduces the original struct.
//
// # Contract Violations
//
// Passing a number field a value wider than its declared bit width is a
// programmer error, not a runtime input condition. Encode panics in that
// case rather than silently truncating a value bound for real RF hardware.
//
// # Reference
//
// Bit offsets and widths follow the STuW81300 datasheet register tables.
package registers
