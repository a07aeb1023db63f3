// SPDX-License-Identifier: EPL-2.0

// Package config provides the configuration schema and loader for the
// beamcast pipeline.
//
// Configuration is read once per run from a YAML file into an explicit,
// validated structure; there is no runtime key lookup and nothing is
// persisted back. All validation happens at construction, so the pipeline
// can treat the values as immutable and correct.
package config

import (
	"log/slog"

	"github.com/hirusha/beamcast/audio"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level maps l onto the slog level, defaulting to Info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// OversampleQuality selects the interpolation method for sample-rate
// conversion.
type OversampleQuality string

const (
	// QualityHigh is Kaiser windowed-sinc interpolation.
	QualityHigh OversampleQuality = "high"

	// QualityFast is cubic interpolation, for previewing.
	QualityFast OversampleQuality = "fast"
)

// IsValid reports whether q is a recognised quality setting.
// The empty string is valid and means QualityHigh.
func (q OversampleQuality) IsValid() bool {
	return q == "" || q == QualityHigh || q == QualityFast
}

// Audio maps q onto the audio package's quality enum.
func (q OversampleQuality) Audio() audio.Quality {
	if q == QualityFast {
		return audio.QualityFast
	}
	return audio.QualityHigh
}

// Config is the root configuration for one pipeline run.
type Config struct {
	// TargetSampleRate is the output rate of oversampling and the rate the
	// DAC is driven at, in Hz.
	TargetSampleRate int `yaml:"target_sample_rate"`

	// BitDepth of a DAC frame. Only 16 is supported.
	BitDepth int `yaml:"bit_depth"`

	// CarrierFrequency of the ultrasonic carrier in Hz. Must sit below
	// TargetSampleRate/2.
	CarrierFrequency float64 `yaml:"carrier_frequency"`

	// ModulationIndex is the AM depth, in [0, 1].
	ModulationIndex float64 `yaml:"modulation_index"`

	// PreEmphasisAlpha is the pre-emphasis coefficient, in [0, 1).
	PreEmphasisAlpha float64 `yaml:"pre_emphasis_alpha"`

	// DevicePath is the DAC device file.
	DevicePath string `yaml:"device_path"`

	// OversampleQuality selects the resampling method. Empty means high.
	OversampleQuality OversampleQuality `yaml:"oversample_quality"`

	// LogLevel for the run. Empty means info.
	LogLevel LogLevel `yaml:"log_level"`
}

// Default returns the configuration used when no file overrides it: a
// 40 kHz carrier at 192 kHz output, 0.9 modulation depth and the usual
// 0.97 pre-emphasis.
func Default() *Config {
	return &Config{
		TargetSampleRate:  192000,
		BitDepth:          16,
		CarrierFrequency:  40000,
		ModulationIndex:   0.9,
		PreEmphasisAlpha:  0.97,
		DevicePath:        "/dev/dac",
		OversampleQuality: QualityHigh,
		LogLevel:          LogInfo,
	}
}
