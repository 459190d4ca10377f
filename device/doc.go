// Package device provides a high-level API for driving the STuW81300
// fractional-N PLL/VCO synthesizer.
//
// # Overview
//
// A Device wraps the register protocol behind frequency-domain operations:
//   - Initializing the chip for its supply voltage and silicon revision
//   - Configuring the reference path and R divider that feed the PFD
//   - Programming N/FRAC/MOD divider values directly
//   - Solving and applying a desired output frequency in one call
//   - Reading lock, startup and overcurrent status
//
// # Basic Usage
//
//	// User provides the bus (protocol.BusPort + protocol.LatchPin)
//	bus, err := spibus.Open(spibus.DefaultConfig())
//
//	dev, err := device.New(bus, bus, 100e6,
//	    device.WithSupplyVoltage(device.HighVoltage),
//	    device.WithReferenceType(device.SingleEnded),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := dev.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := dev.SetReferenceClockDivider(2); err != nil {
//	    log.Fatal(err)
//	}
//	if err := dev.SetOutputFrequency(7625e6); err != nil {
//	    log.Fatal(err)
//	}
//
// # Register Semantics
//
// Every getter reads the chip; every composite setter performs a
// read-modify-write that touches only its own fields. Nothing is cached.
// Operations that span several registers (SetDividerRatio writes ST0, ST1
// and ST2) are not atomic at the hardware level: a mid-sequence failure
// leaves the chip partially updated, and the first failing transaction's
// error is surfaced so the caller can retry the whole operation.
//
// # Concurrency
//
// The driver assumes exclusive ownership of the bus and latch-enable line
// and performs no locking. Calls are synchronous and blocking; recovery
// policy (retries, timeouts) belongs to the caller.
//
// # Logging
//
// An optional Logger can be injected for integration with any logging
// framework:
//
//	dev, err := device.New(bus, bus, 100e6, device.WithLogger(myLogger))
//
// # Error Handling
//
// Domain validation failures are reported before any register is mutated,
// as typed errors (*device.AmplitudeError, *synth.DividerOutOfRangeError,
// ...). Bus failures arrive as *protocol.TransferError or
// *protocol.LatchError and are never retried. An unrecognized silicon
// identity aborts Init with *UnknownDeviceError: driving an unknown
// revision blind could mistune real RF hardware.
package device
