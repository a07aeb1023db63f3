// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV (RIFF/WAVE) decoding and 16-bit PCM writing.
//
// Decoding is built on github.com/go-audio/wav and handles 8/16/24/32-bit
// PCM, normalized to float32 in [-1.0, 1.0]:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// Write16 produces mono 16-bit PCM WAV files on any io.Writer:
//
//	samples := []int16{100, -100, 200, -200}
//	wav.Write16(file, 44100, samples)
//
// The round trip through Write16 and Decoder is used heavily in tests across
// this module to build deterministic input fixtures.
package wav
