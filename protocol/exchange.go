package protocol

import "github.com/moffa90/go-stuw81300/registers"

// BusPort performs one full-duplex byte exchange with the chip. tx and rx
// always have equal length. Implementations must be blocking: when Transfer
// returns, rx holds the bytes the chip clocked out.
type BusPort interface {
	Transfer(tx, rx []byte) error
}

// LatchPin drives the chip's latch-enable line. The line idles high; the
// chip samples a frame while it is held low.
type LatchPin interface {
	SetLow() error
	SetHigh() error
}

// Exchange performs one complete register transaction: pack the frame, pull
// latch enable low, run the full-duplex transfer, release latch enable and
// unpack the response payload.
//
// The latch is released even when the transfer fails; in that case the
// transfer error wins. Reads send a zero payload and return the chip's
// response; the echo of a write is discarded by the caller.
func Exchange(port BusPort, le LatchPin, addr registers.Addr, payload uint32, mode AccessMode) (uint32, error) {
	frame, err := Pack(addr, payload, mode)
	if err != nil {
		return 0, err
	}

	if err := le.SetLow(); err != nil {
		return 0, &LatchError{Err: err}
	}

	var response [FrameSize]byte
	transferErr := port.Transfer(frame[:], response[:])

	if err := le.SetHigh(); err != nil {
		if transferErr != nil {
			return 0, &TransferError{Err: transferErr}
		}
		return 0, &LatchError{Err: err}
	}
	if transferErr != nil {
		return 0, &TransferError{Err: transferErr}
	}

	return Unpack(response), nil
}
