// SPDX-License-Identifier: EPL-2.0

// Package audio provides the signal-processing core of the beamcast
// pipeline.
//
// This package contains the building blocks between decoding and the DAC:
//   - Source interface for streaming PCM input
//   - Registry for decoder registration by format key
//   - Buffer, the in-memory sample representation used by the pipeline
//   - Processor for mono reduction, normalization, pre-emphasis and
//     oversampling
//   - Modulate for amplitude modulation onto an ultrasonic carrier
//
// # Source Interface
//
// The Source interface is the decode boundary:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement it; Processor.Load drains a Source into a
// Buffer for the rest of the chain.
//
// # Processing Chain
//
// The stages run strictly in order, each consuming its input buffer and
// producing a new one:
//
//	p := &audio.Processor{TargetRate: 192000, Alpha: 0.97}
//	buf, _ := p.Load(src)
//	buf = p.ToMono(buf)
//	buf = p.Normalize(buf)
//	buf = p.PreEmphasize(buf)
//	buf, _ = p.Oversample(buf, p.TargetRate)
//	buf, _ = audio.Modulate(buf, 40000, 0.9)
//
// # Oversampling
//
// Oversample uses Kaiser windowed-sinc interpolation by default: cutoff at
// 0.91 of the narrower Nyquist band, designed for 80 dB stopband
// attenuation. QualityFast switches to Catmull-Rom cubic interpolation for
// cheap previewing.
//
// # Sample Format
//
// Sources stream float32 samples in [-1.0, 1.0]; Buffers hold float64 so
// filter and carrier arithmetic keeps its precision over long signals. The
// modulated output deliberately exceeds [-1, 1] (up to 1 + modulation
// index); clipping to the device range happens in the dac package.
//
// # Error Handling
//
// Validation errors (ErrInvalidRate, ErrInvalidModulationIndex,
// ErrInvalidCarrierFrequency, ErrNotMono) are detected at stage entry before
// any samples are touched. Sources return io.EOF when the stream ends.
package audio
