package device

// Config holds the device configuration fixed at construction time.
type Config struct {
	// RefFrequency is the reference clock in Hz (set from the New argument)
	RefFrequency float32

	// SupplyVoltage is the supply class on pin 36
	SupplyVoltage SupplyVoltage

	// ReferenceType is the reference clock connection
	ReferenceType ReferenceType

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		SupplyVoltage: HighVoltage,
		ReferenceType: SingleEnded,
	}
}

// Option is a functional option for configuring the Device.
type Option func(*Config)

// WithSupplyVoltage sets the supply voltage class. Default is HighVoltage.
//
// Example:
//
//	dev, err := device.New(bus, bus, 100e6, device.WithSupplyVoltage(device.LowVoltage))
func WithSupplyVoltage(v SupplyVoltage) Option {
	return func(c *Config) {
		c.SupplyVoltage = v
	}
}

// WithReferenceType sets the reference clock connection type. Default is
// SingleEnded.
//
// Example:
//
//	dev, err := device.New(bus, bus, 100e6, device.WithReferenceType(device.Crystal))
func WithReferenceType(t ReferenceType) Option {
	return func(c *Config) {
		c.ReferenceType = t
	}
}

// WithLogger sets a logger for device operations.
//
// Example:
//
//	dev, err := device.New(bus, bus, 100e6, device.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
