// bikedyn sweeps the forward speed of a benchmark bicycle and reports the
// open-loop stability of the linearized Carvallo-Whipple model: the real and
// imaginary parts of the four eigenvalues at each speed, and the speed range
// in which the bicycle is self-stable.
package main

import (
	"fmt"
	"math"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/singletrack-labs/bikedyn/internal/config"
	"github.com/singletrack-labs/bikedyn/internal/logging"
	"github.com/singletrack-labs/bikedyn/pkg/models"
	"github.com/singletrack-labs/bikedyn/pkg/parameters"
)

func main() {
	flagSet := flag.NewFlagSet("bikedyn", flag.ExitOnError)
	flagSet.String("params", "", "YAML parameter file (default: built-in Meijaard 2007 benchmark)")
	flagSet.Float64("speed-min", 0.0, "lower bound of the speed sweep [m/s]")
	flagSet.Float64("speed-max", 10.0, "upper bound of the speed sweep [m/s]")
	flagSet.Int("samples", 101, "number of sweep samples")
	flagSet.IntP("v", "v", 0, "log verbosity")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(flagSet)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewLogger(cfg.Verbosity)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("stability sweep failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	set, err := loadParameterSet(cfg, logger)
	if err != nil {
		return err
	}

	speeds := linspace(cfg.SpeedMin, cfg.SpeedMax, cfg.Samples)
	model := models.NewMeijaard2007Model(set)

	modes, err := model.CalcEigen(models.Overrides{"v": models.Sweep(speeds)})
	if err != nil {
		return err
	}

	logger.Debug("eigen analysis complete",
		zap.Int("samples", len(modes)),
		zap.Float64("speedMin", cfg.SpeedMin),
		zap.Float64("speedMax", cfg.SpeedMax))

	printEigenTable(speeds, modes)
	printStableRange(speeds, modes)
	return nil
}

func loadParameterSet(cfg *config.Config, logger *zap.Logger) (*parameters.Meijaard2007ParameterSet, error) {
	if cfg.ParamsFile == "" {
		logger.Info("using built-in Meijaard 2007 benchmark parameters")
		return parameters.Meijaard2007Benchmark(), nil
	}

	values, includesRider, err := config.LoadParameterFile(cfg.ParamsFile)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded parameter file",
		zap.String("path", cfg.ParamsFile),
		zap.Bool("includesRider", includesRider))
	return parameters.NewMeijaard2007ParameterSet(values, includesRider)
}

func printEigenTable(speeds []float64, modes []models.Eigenmodes) {
	fmt.Printf("%10s  %s\n", "v [m/s]", "eigenvalues (re±im)")
	for i, speed := range speeds {
		fmt.Printf("%10.3f ", speed)
		for _, ev := range modes[i].Values {
			if imag(ev) == 0 {
				fmt.Printf("  %12.6f", real(ev))
			} else {
				fmt.Printf("  %12.6f±%.6fi", real(ev), math.Abs(imag(ev)))
			}
		}
		fmt.Println()
	}
}

// printStableRange reports the contiguous swept speeds at which every
// eigenvalue has a negative real part.
func printStableRange(speeds []float64, modes []models.Eigenmodes) {
	first, last := -1, -1
	for i := range speeds {
		if isStable(modes[i]) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		fmt.Println("no self-stable speed in the swept range")
		return
	}
	fmt.Printf("self-stable from %.3f to %.3f m/s\n", speeds[first], speeds[last])
}

func isStable(m models.Eigenmodes) bool {
	for _, ev := range m.Values {
		if real(ev) >= 0 {
			return false
		}
	}
	return true
}

func linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
