// SPDX-License-Identifier: EPL-2.0

package dac

import (
	"encoding/binary"
	"fmt"

	"github.com/hirusha/beamcast/utils"
)

const frameBytes = 2 // 16-bit signed little-endian

// encodeFrames serializes float64 samples into fixed-width signed integer
// frames, little-endian, playback order. Scaling is 2^(bitDepth-1)-1 with
// round-to-nearest and a hard clip to the representable range; out-of-range
// input (the modulated signal reaches ±(1+index)) clips, never wraps.
func encodeFrames(samples []float64, bitDepth int) ([]byte, error) {
	if bitDepth != 16 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	out := make([]byte, len(samples)*frameBytes)
	for i, s := range samples {
		frame := utils.Float64ToInt16(s)
		binary.LittleEndian.PutUint16(out[i*frameBytes:], uint16(frame))
	}
	return out, nil
}
