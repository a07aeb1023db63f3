// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"log/slog"
)

// Processor prepares decoded PCM for ultrasonic modulation: channel
// reduction, peak normalization, pre-emphasis and oversampling.
//
// All methods are pure with respect to their inputs; the only side effect
// is an slog record for the silent-buffer normalization no-op.
type Processor struct {
	// TargetRate is the output sample rate of Oversample in Hz.
	TargetRate int

	// Alpha is the pre-emphasis coefficient, in [0, 1). 0 disables the
	// filter. Validated by the config package at construction.
	Alpha float64

	// Quality selects the oversampling interpolation method.
	Quality Quality
}

// Load drains src into a Buffer, widening samples to float64.
// Returns ErrEmptyInput if the source finishes without producing samples.
func (p *Processor) Load(src Source) (*Buffer, error) {
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	buf := make([]float32, size)
	data := make([]float64, 0, size)

	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			data = append(data, float64(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
	}

	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	return &Buffer{
		Data:     data,
		Rate:     src.SampleRate(),
		Channels: src.Channels(),
	}, nil
}

// ToMono reduces an interleaved buffer to a single channel by averaging
// all channels per frame. A mono buffer is returned as-is.
func (p *Processor) ToMono(b *Buffer) *Buffer {
	if b.Channels <= 1 {
		return b
	}

	channels := b.Channels
	frames := b.Frames()
	out := &Buffer{
		Data:     make([]float64, frames),
		Rate:     b.Rate,
		Channels: 1,
	}

	switch channels {
	case 2:
		for f := 0; f < frames; f++ {
			idx := f << 1
			out.Data[f] = (b.Data[idx] + b.Data[idx+1]) * 0.5
		}
	default:
		inv := 1.0 / float64(channels)
		for f := 0; f < frames; f++ {
			sum := 0.0
			base := f * channels
			for c := 0; c < channels; c++ {
				sum += b.Data[base+c]
			}
			out.Data[f] = sum * inv
		}
	}

	return out
}

// Normalize scales the buffer so its peak absolute amplitude is exactly 1.0.
// A silent buffer cannot be scaled; it is returned unchanged and the skip is
// logged so the no-op is distinguishable from a successful scale.
func (p *Processor) Normalize(b *Buffer) *Buffer {
	peak := b.Peak()
	if peak == 0 {
		slog.Debug("normalize: silent buffer, skipping scale",
			"samples", len(b.Data), "rate", b.Rate)
		return b
	}

	out := &Buffer{
		Data:     make([]float64, len(b.Data)),
		Rate:     b.Rate,
		Channels: b.Channels,
	}
	scale := 1.0 / peak
	for i, v := range b.Data {
		out.Data[i] = v * scale
	}
	return out
}

// PreEmphasize applies the first-order high-pass y[n] = x[n] - alpha*x[n-1]
// with y[0] = x[0], in a single causal pass. Alpha 0 is the identity.
func (p *Processor) PreEmphasize(b *Buffer) *Buffer {
	if len(b.Data) == 0 || p.Alpha == 0 {
		return b
	}

	out := &Buffer{
		Data:     make([]float64, len(b.Data)),
		Rate:     b.Rate,
		Channels: b.Channels,
	}
	out.Data[0] = b.Data[0]
	for n := 1; n < len(b.Data); n++ {
		out.Data[n] = b.Data[n] - p.Alpha*b.Data[n-1]
	}
	return out
}
