package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/npv-sim/api"
	sim "github.com/inference-sim/npv-sim/sim"
)

var (
	serveConfigPath string // Optional viper config file
	serveLogLevel   string // Log verbosity level for the server
)

// loadServePresets reads presets for the API. A missing presets file is not
// fatal; the server starts with no presets.
func loadServePresets(path string) map[string]sim.Parameters {
	cfg, err := loadPresetConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logrus.Warnf("Presets file %s not found; serving without presets", path)
			return nil
		}
		logrus.Fatalf("%v", err)
	}
	return cfg.Presets
}

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulations over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(serveLogLevel)

		cfg, err := api.LoadConfig(serveConfigPath)
		if err != nil {
			logrus.Fatalf("Unable to load server config: %v", err)
		}
		if cmd.Flags().Changed("defaults") {
			cfg.PresetsFile = presetsPath
		}

		router := api.NewRouter(cfg, loadServePresets(cfg.PresetsFile))
		logrus.Infof("Listening on %s (enforce_ranges=%t)", cfg.Addr(), cfg.EnforceRanges)
		if err := router.Run(cfg.Addr()); err != nil {
			logrus.Fatalf("Server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Server config file (YAML); NPVSIM_* environment variables override it")
	serveCmd.Flags().StringVar(&serveLogLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(serveCmd)
}
