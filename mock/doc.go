// Package mock provides an in-memory STuW81300 for tests and examples.
//
// The mock implements both protocol.BusPort and protocol.LatchPin, so a
// single instance stands in for the whole 4-wire hookup:
//
//	chip := mock.New()
//	dev, err := device.New(chip, chip, 100e6)
//
// It keeps the twelve register payloads in memory, answers reads with the
// stored value and applies writes, enforcing the latch-enable framing a
// real chip needs. Identity and fault injection hooks cover the error
// paths that real hardware only produces when something is miswired.
package mock
