// Package protocol implements the STuW81300 4-wire serial register protocol.
//
// Every bus transaction exchanges exactly one 4-byte frame, full duplex,
// most significant byte first:
//
//	bit 31      mode (0 = write, 1 = read)
//	bits 30..27 register address (0..11)
//	bits 26..0  payload
//
// Reading the device ID register (address 11) therefore sends the frame
// D8 00 00 00, and the chip clocks its response out on the same exchange.
//
// # Framing
//
// Use Pack to build a frame and Unpack to recover the payload from a
// response:
//
//	frame, err := protocol.Pack(registers.AddrST3, payload, protocol.Write)
//	payload := protocol.Unpack(response)
//
// Pack rejects payloads wider than 27 bits and writes aimed at read-only
// registers before anything touches the wire.
//
// # Bus Capabilities
//
// This package does NOT implement hardware access. Callers supply two small
// capabilities: a BusPort that performs one full-duplex byte exchange, and a
// LatchPin that drives the chip's latch-enable line. Exchange scopes one
// transaction: latch low, transfer, latch high (the latch is released even
// when the transfer fails). Any SPI controller, bit-banged GPIO port or mock
// can sit behind these interfaces.
//
// # Error Handling
//
// Framing violations are reported as *PayloadTooWideError and
// *ReadOnlyError. Bus failures are passed through verbatim inside
// *TransferError and *LatchError, both of which unwrap to the underlying
// transport error. The protocol layer never retries.
package protocol
