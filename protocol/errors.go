package protocol

import (
	"fmt"

	"github.com/moffa90/go-stuw81300/registers"
)

// PayloadTooWideError indicates a payload that does not fit in the frame's
// 27 payload bits. The frame is never sent.
type PayloadTooWideError struct {
	Payload uint32
}

func (e *PayloadTooWideError) Error() string {
	return fmt.Sprintf("payload 0x%08X too wide: frames carry %d payload bits", e.Payload, PayloadBits)
}

// ReadOnlyError indicates a write aimed at a read-only register. The frame
// is never sent.
type ReadOnlyError struct {
	Addr registers.Addr
}

func (e *ReadOnlyError) Error() string {
	return fmt.Sprintf("register %s is read only", e.Addr)
}

// TransferError wraps a failure reported by the BusPort during the
// full-duplex exchange.
type TransferError struct {
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("bus transfer failed: %v", e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// LatchError wraps a failure reported by the LatchPin while framing a
// transaction.
type LatchError struct {
	Err error
}

func (e *LatchError) Error() string {
	return fmt.Sprintf("latch enable failed: %v", e.Err)
}

func (e *LatchError) Unwrap() error { return e.Err }
