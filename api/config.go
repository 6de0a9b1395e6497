package api

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config stores the HTTP server settings.
// Values are read by viper from an optional config file and NPVSIM_*
// environment variables, e.g. NPVSIM_PORT or NPVSIM_ALLOWED_ORIGINS.
type Config struct {
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"` // gin mode: debug, release or test
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	EnforceRanges  bool     `mapstructure:"enforce_ranges"`
	DefaultSeed    int64    `mapstructure:"default_seed"`
	PresetsFile    string   `mapstructure:"presets_file"`
}

// LoadConfig reads configuration from path (if non-empty) and the
// environment. Environment variables override the file.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("port", 8080)
	v.SetDefault("mode", "release")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("enforce_ranges", true)
	v.SetDefault("default_seed", 42)
	v.SetDefault("presets_file", "defaults.yaml")

	v.SetEnvPrefix("NPVSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading server config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding server config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
