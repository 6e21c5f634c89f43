// Package config loads and validates the bikedyn CLI configuration.
// Precedence: flags > environment > parameter file > defaults.
package config

import "fmt"

// Config holds the resolved CLI configuration.
type Config struct {
	// ParamsFile is an optional YAML file supplying the benchmark
	// parameter values. Empty selects the built-in Meijaard 2007
	// benchmark bicycle.
	ParamsFile string

	// SpeedMin and SpeedMax bound the forward speed sweep [m/s].
	SpeedMin float64
	SpeedMax float64

	// Samples is the number of sweep samples.
	Samples int

	// Verbosity selects the log level (0 info, >0 debug).
	Verbosity int
}

// Validate performs fail-fast validation on the loaded configuration: the
// tool should not start with an invalid sweep definition.
func Validate(cfg *Config) error {
	if cfg.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", cfg.Samples)
	}
	if cfg.SpeedMax < cfg.SpeedMin {
		return fmt.Errorf("speed range is empty: min=%g max=%g", cfg.SpeedMin, cfg.SpeedMax)
	}
	return nil
}
