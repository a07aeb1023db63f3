// SPDX-License-Identifier: EPL-2.0

// Package beamcast converts an audio file into an ultrasonic,
// amplitude-modulated bit stream for driving a parametric speaker array
// through a DAC.
//
// # Signal Chain
//
// Data flows strictly one way, each stage consuming its input buffer before
// the next starts:
//
//	decoder → Processor (mono, normalize, pre-emphasis, oversample)
//	        → Modulate (ultrasonic AM carrier)
//	        → dac.Writer (16-bit frames to the device)
//
// # Quick Start
//
//	cfg := config.Default()
//
//	src, err := beamcast.DecodeFile(beamcast.DefaultRegistry(), "voice.wav")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//
//	err = beamcast.Transmit(src, cfg, dac.New(cfg.DevicePath))
//
// # Supported Formats
//
// The default registry decodes:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Configuration
//
// The config package loads a validated YAML configuration: target sample
// rate, carrier frequency, modulation index, pre-emphasis coefficient, bit
// depth and device path. Validation happens once at construction; the
// pipeline treats the values as immutable for the run.
//
// See the audio, dac and config subpackages for the individual contracts.
package beamcast
