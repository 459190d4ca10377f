// Package spibus connects the driver to real hardware on Linux.
//
// It pairs a spidev port (via periph.io) with a character-device GPIO line
// (via go-gpiocdev) driving the chip's latch enable, and exposes them as
// the bus and latch interfaces the protocol package consumes:
//
//	bus, err := spibus.Open(spibus.DefaultConfig())
//	if err != nil {
//	    // ...
//	}
//	defer bus.Close()
//
//	dev, err := device.New(bus, bus, 100e6)
//
// The chip's dedicated chip-select behaves as a latch enable rather than a
// plain select, so it is driven from a GPIO line instead of the spidev CS
// signal. Wire the spidev CE pin somewhere harmless or disable it.
package spibus
