// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// Buffer holds PCM samples in memory. Data is interleaved while Channels > 1
// and time-ordered once reduced to mono. Samples are float64 so that filter
// and carrier arithmetic does not accumulate float32 rounding error across
// long buffers.
//
// Pipeline stages never mutate their input: each stage returns a new Buffer
// (or the input itself for a documented no-op).
type Buffer struct {
	Data     []float64
	Rate     int
	Channels int
}

// Frames returns the number of per-channel sample frames.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// Peak returns the largest absolute sample value, 0 for an empty buffer.
func (b *Buffer) Peak() float64 {
	peak := 0.0
	for _, v := range b.Data {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Data:     make([]float64, len(b.Data)),
		Rate:     b.Rate,
		Channels: b.Channels,
	}
	copy(out.Data, b.Data)
	return out
}
