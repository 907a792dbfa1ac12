package domain

// Config holds the PROPr processor configuration.
type Config struct {
	// Rounding selects how final outputs are rounded to three decimals.
	// - "half-even": ties to even, matching the published reference scorer
	// - "half-away": ties away from zero
	Rounding RoundingMode `json:"rounding"`

	// Observability
	Logging LoggingConfig `json:"logging"`
	Tracing TracingConfig `json:"tracing"`
	Metrics MetricsConfig `json:"metrics"`
}

// RoundingMode selects the tie-breaking rule for three-decimal rounding.
type RoundingMode string

const (
	// RoundHalfEven rounds ties to the even neighbour.
	RoundHalfEven RoundingMode = "half-even"

	// RoundHalfAwayFromZero rounds ties away from zero.
	RoundHalfAwayFromZero RoundingMode = "half-away"
)

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	Enabled     bool   `json:"enabled"`
	ServiceName string `json:"serviceName"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Rounding: RoundHalfEven,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "propr",
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "propr",
		},
	}
}
