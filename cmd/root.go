package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	sim "github.com/inference-sim/npv-sim/sim"
)

var (
	// CLI flags for the run command
	seed          int64  // Seed for the sales draws
	logLevel      string // Log verbosity level
	presetName    string // Preset from the presets file
	presetsPath   string // Path to defaults.yaml
	paramsPath    string // YAML file with a single parameter set
	outputFormat  string // text or json
	samplesPath   string // Optional file receiving raw NPV samples
	bins          int    // Histogram bin count
	enforceRanges bool   // Reject parameters outside the accepted input ranges

	runParams parameterFlags
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "npv-sim",
	Short: "Monte Carlo net present value simulator",
}

// setLogLevel configures logrus from the --log flag.
func setLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", level)
	}
	logrus.SetLevel(parsed)
}

// resolveParameters layers the run inputs: stock defaults, then --preset,
// then --params, then any parameter flag the user set explicitly.
func resolveParameters(fs *pflag.FlagSet) (sim.Parameters, error) {
	p := sim.DefaultParameters()
	if presetName != "" {
		preset, err := GetPreset(presetName, presetsPath)
		if err != nil {
			return p, err
		}
		p = preset
	}
	if paramsPath != "" {
		loaded, err := loadParamsFile(paramsPath, p)
		if err != nil {
			return p, err
		}
		p = loaded
	}
	runParams.apply(fs, &p)
	return p, nil
}

// executeRun simulates p and writes the report to w.
func executeRun(p sim.Parameters, w io.Writer) error {
	if enforceRanges {
		if err := p.CheckRanges(); err != nil {
			return err
		}
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("unknown output format %q (want text or json)", outputFormat)
	}
	if bins < 1 || bins > sim.MaxBins {
		return fmt.Errorf("--bins=%d: %w", bins, sim.ErrInvalidBins)
	}

	logrus.Infof("Starting simulation: %d trials, %d years, seed=%d",
		p.SimulationCount, p.HorizonYears, seed)
	startTime := time.Now()

	npvs, err := sim.RunSeeded(p, seed)
	if err != nil {
		return err
	}
	report, err := sim.NewReport(p, seed, npvs, bins)
	if err != nil {
		return err
	}

	if samplesPath != "" {
		if err := sim.SaveSamples(npvs, samplesPath); err != nil {
			return err
		}
	}

	if outputFormat == "json" {
		if err := report.WriteJSON(w); err != nil {
			return err
		}
	} else {
		report.WriteText(w)
	}

	logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	return nil
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the NPV simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(logLevel)

		p, err := resolveParameters(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Unable to resolve parameters: %v", err)
		}
		if err := executeRun(p, os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
	},
}

// presetsCmd lists the presets available to --preset
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List parameter presets",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadPresetConfig(presetsPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		for _, name := range cfg.PresetNames() {
			p := cfg.Presets[name]
			fmt.Printf("%-14s sims=%d years=%d rate=%.2f sales=%.0f dev=%.2f var=%.2f fixed=%.0f tax=%.2f invest=%.0f\n",
				name, p.SimulationCount, p.HorizonYears, p.DiscountRate, p.BaseSales, p.SalesDeviation,
				p.VariableCostFraction, p.FixedCosts, p.TaxRate, p.InitialInvestment)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&presetsPath, "defaults", "defaults.yaml", "Path to the presets file")

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the sales draws")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&presetName, "preset", "", "Start from a named preset in the presets file")
	runCmd.Flags().StringVar(&paramsPath, "params", "", "YAML file with simulation parameters")
	runCmd.Flags().StringVar(&outputFormat, "output", "text", "Report format (text, json)")
	runCmd.Flags().StringVar(&samplesPath, "samples", "", "Write raw NPV samples to this file, one per line")
	runCmd.Flags().IntVar(&bins, "bins", sim.DefaultBins, "Histogram bin count")
	runCmd.Flags().BoolVar(&enforceRanges, "enforce-ranges", true, "Reject parameters outside the accepted input ranges")

	// Project parameters
	runParams.register(runCmd.Flags())

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(presetsCmd)
}
