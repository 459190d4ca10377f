package protocol

import (
	"encoding/binary"

	"github.com/moffa90/go-stuw81300/registers"
)

// AccessMode selects the direction of a register transaction.
type AccessMode uint8

const (
	// Write sends a payload to the addressed register.
	Write AccessMode = 0

	// Read requests the addressed register's current payload.
	Read AccessMode = 1
)

func (m AccessMode) String() string {
	if m == Read {
		return "read"
	}
	return "write"
}

const (
	// FrameSize is the fixed transaction size in bytes.
	FrameSize = 4

	// PayloadBits is the number of payload bits a frame carries.
	PayloadBits = 27

	// MaxPayload is the widest payload a frame can carry.
	MaxPayload = 1<<PayloadBits - 1
)

// Pack builds the 4-byte frame for one register transaction.
//
// Byte 0 carries, from the most significant bit: the mode bit, the 4-bit
// register address, and the top 3 bits of the payload. Bytes 1..3 carry the
// remaining 24 payload bits, big-endian.
//
// Returns *PayloadTooWideError if the payload exceeds 27 bits and
// *ReadOnlyError if a write targets a read-only register. Both are detected
// here, before any bus activity.
func Pack(addr registers.Addr, payload uint32, mode AccessMode) ([FrameSize]byte, error) {
	var frame [FrameSize]byte

	if payload > MaxPayload {
		return frame, &PayloadTooWideError{Payload: payload}
	}
	if mode == Write && addr.ReadOnly() {
		return frame, &ReadOnlyError{Addr: addr}
	}

	binary.BigEndian.PutUint32(frame[:], payload)
	frame[0] |= byte(mode)<<7 | byte(addr)<<3
	return frame, nil
}

// Unpack reassembles the 27-bit payload from a response frame.
func Unpack(frame [FrameSize]byte) uint32 {
	return binary.BigEndian.Uint32(frame[:]) & MaxPayload
}
