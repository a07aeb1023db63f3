// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Modulate amplitude-modulates a normalized mono buffer onto an ultrasonic
// carrier:
//
//	y[n] = cos(2π·fc·n/rate) · (1 + index·x[n])
//
// The carrier phase is computed from the exact float64 sample index, so it
// stays sample-synchronous with the input over the whole buffer; there is no
// truncated running counter that could wrap or drift.
//
// index must be in [0, 1]; out-of-range values are rejected with
// ErrInvalidModulationIndex rather than clamped (see errors.go). The carrier
// must satisfy 0 < fc < rate/2 or ErrInvalidCarrierFrequency is returned.
//
// The output is not re-normalized: values may reach ±(1+index). Scaling to
// the device range is the DAC writer's job, which keeps modulation
// numerically transparent.
func Modulate(b *Buffer, carrierFreq, index float64) (*Buffer, error) {
	if len(b.Data) == 0 {
		return nil, ErrEmptyInput
	}
	if b.Channels > 1 {
		return nil, ErrNotMono
	}
	if index < 0 || index > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidModulationIndex, index)
	}
	nyquist := float64(b.Rate) / 2
	if carrierFreq <= 0 || carrierFreq >= nyquist {
		return nil, fmt.Errorf("%w: got %v Hz at rate %d Hz", ErrInvalidCarrierFrequency, carrierFreq, b.Rate)
	}

	out := &Buffer{
		Data:     make([]float64, len(b.Data)),
		Rate:     b.Rate,
		Channels: 1,
	}

	omega := 2 * math.Pi * carrierFreq / float64(b.Rate)
	for n, x := range b.Data {
		carrier := math.Cos(omega * float64(n))
		out.Data[n] = carrier * (1 + index*x)
	}

	return out, nil
}
