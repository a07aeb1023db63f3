// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat is returned when no decoder is registered for
	// an input format.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrEmptyInput is returned when a source produces zero samples.
	ErrEmptyInput = errors.New("source produced no samples")

	// ErrInvalidRate is returned for a non-positive target sample rate.
	ErrInvalidRate = errors.New("target sample rate must be positive")

	// ErrInvalidModulationIndex is returned when the modulation index is
	// outside [0, 1]. Overmodulation corrupts the demodulated signal on a
	// parametric speaker, so out-of-range values are rejected rather than
	// clamped.
	ErrInvalidModulationIndex = errors.New("modulation index must be in [0, 1]")

	// ErrInvalidCarrierFrequency is returned when the carrier does not
	// satisfy 0 < fc < sampleRate/2.
	ErrInvalidCarrierFrequency = errors.New("carrier frequency must be in (0, sampleRate/2)")

	// ErrNotMono is returned when a stage that requires a single channel
	// receives an interleaved multi-channel buffer.
	ErrNotMono = errors.New("buffer must be mono")
)
