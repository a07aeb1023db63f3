// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid RIFF/WAVE stream.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a WAV file whose format chunk
	// could not be understood.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedBitDepth indicates a PCM bit depth the decoder cannot
	// normalize.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
