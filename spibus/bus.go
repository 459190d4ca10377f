package spibus

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Bus is an open hardware hookup. It implements protocol.BusPort and
// protocol.LatchPin; pass the same instance as both.
type Bus struct {
	port  spi.PortCloser
	conn  spi.Conn
	chip  *gpiocdev.Chip
	latch *gpiocdev.Line
	cfg   Config
}

// Open claims the SPI port and the latch-enable line described by cfg.
// The latch enable comes up high, the chip's idle state.
func Open(cfg Config) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initialize periph.io: %w", err)
	}

	port, err := spireg.Open(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("open SPI device %s: %w", cfg.Device, err)
	}

	// Mode 0: data is latched on the rising clock edge.
	conn, err := port.Connect(physic.Frequency(cfg.SpeedHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("connect to SPI device %s: %w", cfg.Device, err)
	}

	chip, err := gpiocdev.NewChip(cfg.GPIOChip)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("open GPIO chip %s: %w", cfg.GPIOChip, err)
	}

	latch, err := chip.RequestLine(
		cfg.LatchPin,
		gpiocdev.AsOutput(1),
		gpiocdev.WithConsumer("stuw81300-le"),
	)
	if err != nil {
		chip.Close()
		port.Close()
		return nil, fmt.Errorf("request latch enable pin %d: %w", cfg.LatchPin, err)
	}

	return &Bus{
		port:  port,
		conn:  conn,
		chip:  chip,
		latch: latch,
		cfg:   cfg,
	}, nil
}

// Transfer performs one full-duplex SPI exchange.
func (b *Bus) Transfer(tx, rx []byte) error {
	if len(tx) != len(rx) {
		return fmt.Errorf("tx and rx buffers must be the same length")
	}
	if err := b.conn.Tx(tx, rx); err != nil {
		return fmt.Errorf("SPI transfer failed: %w", err)
	}
	return nil
}

// SetLow drives the latch enable low.
func (b *Bus) SetLow() error {
	if err := b.latch.SetValue(0); err != nil {
		return fmt.Errorf("drive latch enable low: %w", err)
	}
	return nil
}

// SetHigh drives the latch enable high.
func (b *Bus) SetHigh() error {
	if err := b.latch.SetValue(1); err != nil {
		return fmt.Errorf("drive latch enable high: %w", err)
	}
	return nil
}

// Close leaves the latch enable high and releases the SPI port and GPIO
// line.
func (b *Bus) Close() error {
	var errs []error

	if b.latch != nil {
		b.latch.SetValue(1)
		if err := b.latch.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close latch enable line: %w", err))
		}
		b.latch = nil
	}
	if b.chip != nil {
		if err := b.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close GPIO chip: %w", err))
		}
		b.chip = nil
	}
	if b.port != nil {
		if err := b.port.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close SPI port: %w", err))
		}
		b.port = nil
		b.conn = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing bus: %v", errs)
	}
	return nil
}

// String describes the hookup.
func (b *Bus) String() string {
	return fmt.Sprintf("%s @ %d Hz, LE on %s:%d",
		b.cfg.Device, b.cfg.SpeedHz, b.cfg.GPIOChip, b.cfg.LatchPin)
}
