// SPDX-License-Identifier: EPL-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hirusha/beamcast/audio"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate(Default()) error = %v", err)
	}

	if cfg.TargetSampleRate != 192000 {
		t.Errorf("TargetSampleRate = %d, want 192000", cfg.TargetSampleRate)
	}
	if cfg.CarrierFrequency != 40000 {
		t.Errorf("CarrierFrequency = %v, want 40000", cfg.CarrierFrequency)
	}
	if cfg.ModulationIndex != 0.9 {
		t.Errorf("ModulationIndex = %v, want 0.9", cfg.ModulationIndex)
	}
	if cfg.PreEmphasisAlpha != 0.97 {
		t.Errorf("PreEmphasisAlpha = %v, want 0.97", cfg.PreEmphasisAlpha)
	}
}

func TestLoadFromReader(t *testing.T) {
	t.Parallel()

	yml := `
target_sample_rate: 96000
carrier_frequency: 25000
modulation_index: 0.5
oversample_quality: fast
log_level: debug
`
	cfg, err := LoadFromReader(strings.NewReader(yml))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if cfg.TargetSampleRate != 96000 {
		t.Errorf("TargetSampleRate = %d, want 96000", cfg.TargetSampleRate)
	}
	if cfg.CarrierFrequency != 25000 {
		t.Errorf("CarrierFrequency = %v, want 25000", cfg.CarrierFrequency)
	}
	if cfg.OversampleQuality != QualityFast {
		t.Errorf("OversampleQuality = %q, want fast", cfg.OversampleQuality)
	}
	if cfg.LogLevel != LogDebug {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}

	// Keys not present in the file keep their defaults.
	if cfg.ModulationIndex != 0.5 {
		t.Errorf("ModulationIndex = %v, want 0.5", cfg.ModulationIndex)
	}
	if cfg.PreEmphasisAlpha != 0.97 {
		t.Errorf("PreEmphasisAlpha = %v, want default 0.97", cfg.PreEmphasisAlpha)
	}
	if cfg.DevicePath != "/dev/dac" {
		t.Errorf("DevicePath = %q, want default /dev/dac", cfg.DevicePath)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "beamcast.yaml")
	if err := os.WriteFile(path, []byte("carrier_frequency: 30000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CarrierFrequency != 30000 {
		t.Errorf("CarrierFrequency = %v, want 30000", cfg.CarrierFrequency)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() on a missing file succeeded")
	}
}

func TestLoadFromReader_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := LoadFromReader(strings.NewReader("carrier_freq: 40000\n"))
	if err == nil {
		t.Fatal("LoadFromReader() accepted an unknown key")
	}
}

func TestLoadFromReader_MalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadFromReader(strings.NewReader("target_sample_rate: [not a number\n"))
	if err == nil {
		t.Fatal("LoadFromReader() accepted malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero sample rate",
			mutate:  func(c *Config) { c.TargetSampleRate = 0 },
			wantErr: "target_sample_rate",
		},
		{
			name:    "unsupported bit depth",
			mutate:  func(c *Config) { c.BitDepth = 24 },
			wantErr: "bit_depth",
		},
		{
			name:    "zero carrier",
			mutate:  func(c *Config) { c.CarrierFrequency = 0 },
			wantErr: "carrier_frequency",
		},
		{
			name:    "carrier at nyquist",
			mutate:  func(c *Config) { c.CarrierFrequency = 96000 },
			wantErr: "carrier_frequency",
		},
		{
			name:    "overmodulation",
			mutate:  func(c *Config) { c.ModulationIndex = 1.2 },
			wantErr: "modulation_index",
		},
		{
			name:    "negative modulation index",
			mutate:  func(c *Config) { c.ModulationIndex = -0.1 },
			wantErr: "modulation_index",
		},
		{
			name:    "alpha out of range",
			mutate:  func(c *Config) { c.PreEmphasisAlpha = 1.0 },
			wantErr: "pre_emphasis_alpha",
		},
		{
			name:    "missing device path",
			mutate:  func(c *Config) { c.DevicePath = "" },
			wantErr: "device_path",
		},
		{
			name:    "bad quality",
			mutate:  func(c *Config) { c.OversampleQuality = "best" },
			wantErr: "oversample_quality",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "trace" },
			wantErr: "log_level",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() accepted an invalid config")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.ModulationIndex = 2
	cfg.DevicePath = ""
	cfg.BitDepth = 8

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() accepted an invalid config")
	}
	for _, want := range []string{"modulation_index", "device_path", "bit_depth"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error does not mention %q: %v", want, err)
		}
	}
}

func TestLogLevel_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   LogLevel
		want slog.Level
	}{
		{LogDebug, slog.LevelDebug},
		{LogInfo, slog.LevelInfo},
		{LogWarn, slog.LevelWarn},
		{LogError, slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.in.Level(); got != tt.want {
			t.Errorf("LogLevel(%q).Level() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOversampleQuality_Audio(t *testing.T) {
	t.Parallel()

	if got := QualityFast.Audio(); got != audio.QualityFast {
		t.Errorf("QualityFast.Audio() = %v, want audio.QualityFast", got)
	}
	if got := QualityHigh.Audio(); got != audio.QualityHigh {
		t.Errorf("QualityHigh.Audio() = %v, want audio.QualityHigh", got)
	}
	if got := OversampleQuality("").Audio(); got != audio.QualityHigh {
		t.Errorf(`OversampleQuality("").Audio() = %v, want audio.QualityHigh`, got)
	}
}
