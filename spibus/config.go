package spibus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the hardware hookup.
type Config struct {
	// Device is the spidev port name, e.g. "/dev/spidev0.0".
	Device string `yaml:"device"`

	// SpeedHz is the SPI clock rate. The chip tolerates up to 20 MHz.
	SpeedHz int64 `yaml:"speed_hz"`

	// GPIOChip is the GPIO character device driving the latch enable,
	// e.g. "/dev/gpiochip0".
	GPIOChip string `yaml:"gpio_chip"`

	// LatchPin is the line offset of the latch enable on GPIOChip.
	LatchPin int `yaml:"latch_pin"`
}

// DefaultConfig returns a hookup typical for a Raspberry Pi: the first
// spidev port at 1 MHz with the latch enable on GPIO 25.
func DefaultConfig() Config {
	return Config{
		Device:   "/dev/spidev0.0",
		SpeedHz:  1000000,
		GPIOChip: "/dev/gpiochip0",
		LatchPin: 25,
	}
}

// LoadConfig reads a Config from a YAML file. Missing keys keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
