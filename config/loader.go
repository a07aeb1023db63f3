// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated
// [Config]. It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r over [Default] values and
// validates the result. Unknown keys are rejected. Useful in tests where
// configs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.TargetSampleRate <= 0 {
		errs = append(errs, fmt.Errorf("target_sample_rate %d must be positive", cfg.TargetSampleRate))
	}

	if cfg.BitDepth != 16 {
		errs = append(errs, fmt.Errorf("bit_depth %d is unsupported; only 16 is available", cfg.BitDepth))
	}

	if cfg.CarrierFrequency <= 0 {
		errs = append(errs, fmt.Errorf("carrier_frequency %.1f must be positive", cfg.CarrierFrequency))
	} else if cfg.TargetSampleRate > 0 && cfg.CarrierFrequency >= float64(cfg.TargetSampleRate)/2 {
		errs = append(errs, fmt.Errorf("carrier_frequency %.1f violates Nyquist for target_sample_rate %d (must be below %d)",
			cfg.CarrierFrequency, cfg.TargetSampleRate, cfg.TargetSampleRate/2))
	}

	if cfg.ModulationIndex < 0 || cfg.ModulationIndex > 1 {
		errs = append(errs, fmt.Errorf("modulation_index %.3f is out of range [0, 1]; overmodulation is rejected, not clamped", cfg.ModulationIndex))
	}

	if cfg.PreEmphasisAlpha < 0 || cfg.PreEmphasisAlpha >= 1 {
		errs = append(errs, fmt.Errorf("pre_emphasis_alpha %.3f is out of range [0, 1)", cfg.PreEmphasisAlpha))
	}

	if cfg.DevicePath == "" {
		errs = append(errs, errors.New("device_path is required"))
	}

	if !cfg.OversampleQuality.IsValid() {
		errs = append(errs, fmt.Errorf("oversample_quality %q is invalid; valid values: high, fast", cfg.OversampleQuality))
	}

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	return errors.Join(errs...)
}
