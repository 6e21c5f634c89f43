package config

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// flagBindings maps viper keys (= env var names) to pflag names.
var flagBindings = map[string]string{
	"BIKEDYN_PARAMS_FILE": "params",
	"BIKEDYN_SPEED_MIN":   "speed-min",
	"BIKEDYN_SPEED_MAX":   "speed-max",
	"BIKEDYN_SAMPLES":     "samples",
	"BIKEDYN_V":           "v",
}

// Load resolves the CLI configuration with precedence
// flags > env > defaults and validates it fail-fast. flagSet may be nil
// (e.g. in tests that don't set CLI flags).
func Load(flagSet *flag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("BIKEDYN_PARAMS_FILE", "")
	v.SetDefault("BIKEDYN_SPEED_MIN", 0.0)
	v.SetDefault("BIKEDYN_SPEED_MAX", 10.0)
	v.SetDefault("BIKEDYN_SAMPLES", 101)
	v.SetDefault("BIKEDYN_V", 0)

	v.AutomaticEnv()

	if flagSet != nil {
		for viperKey, flagName := range flagBindings {
			if f := flagSet.Lookup(flagName); f != nil {
				if err := v.BindPFlag(viperKey, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	cfg := &Config{
		ParamsFile: v.GetString("BIKEDYN_PARAMS_FILE"),
		SpeedMin:   v.GetFloat64("BIKEDYN_SPEED_MIN"),
		SpeedMax:   v.GetFloat64("BIKEDYN_SPEED_MAX"),
		Samples:    v.GetInt("BIKEDYN_SAMPLES"),
		Verbosity:  v.GetInt("BIKEDYN_V"),
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// parameterFile is the on-disk shape of a benchmark parameter file: a
// `values` mapping plus optional metadata.
type parameterFile struct {
	Values           map[string]float64 `yaml:"values"`
	Parameterization string             `yaml:"parameterization"`
	IncludesRider    bool               `yaml:"includes_rider"`
}

// LoadParameterFile reads a YAML parameter file and returns the value
// mapping and the includes-rider flag. Schema validation is left to the
// parameter set constructor.
func LoadParameterFile(path string) (map[string]float64, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read parameter file: %w", err)
	}

	var pf parameterFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, false, fmt.Errorf("failed to parse parameter file %s: %w", path, err)
	}
	if pf.Parameterization != "" && pf.Parameterization != "meijaard2007" {
		return nil, false, fmt.Errorf("unsupported parameterization %q in %s (want meijaard2007)", pf.Parameterization, path)
	}
	if len(pf.Values) == 0 {
		return nil, false, fmt.Errorf("parameter file %s has no values mapping", path)
	}
	return pf.Values, pf.IncludesRider, nil
}
