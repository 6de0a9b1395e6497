package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/npv-sim/sim"
)

// PresetConfig represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type PresetConfig struct {
	Version string                    `yaml:"version"`
	Presets map[string]sim.Parameters `yaml:"presets"`
}

// decodeStrict parses YAML into out, rejecting unknown fields so that
// typos in parameter names are errors rather than silent zeros.
// An empty document leaves out untouched.
func decodeStrict(data []byte, out any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// loadPresetConfig parses a presets file such as defaults.yaml.
func loadPresetConfig(path string) (PresetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PresetConfig{}, fmt.Errorf("reading presets file: %w", err)
	}
	var cfg PresetConfig
	if err := decodeStrict(data, &cfg); err != nil {
		return PresetConfig{}, fmt.Errorf("parsing presets file %s: %w", path, err)
	}
	return cfg, nil
}

// GetPreset returns the named preset from the presets file at path.
func GetPreset(name, path string) (sim.Parameters, error) {
	cfg, err := loadPresetConfig(path)
	if err != nil {
		return sim.Parameters{}, err
	}
	p, ok := cfg.Presets[name]
	if !ok {
		return sim.Parameters{}, fmt.Errorf("preset %q not found in %s", name, path)
	}
	return p, nil
}

// PresetNames returns the preset names in sorted order.
func (c PresetConfig) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadParamsFile reads a single parameter set from YAML. Fields absent from
// the file keep their value in base.
func loadParamsFile(path string, base sim.Parameters) (sim.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading params file: %w", err)
	}
	p := base
	if err := decodeStrict(data, &p); err != nil {
		return base, fmt.Errorf("parsing params file %s: %w", path, err)
	}
	return p, nil
}
