// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding via
// github.com/jfreymuth/oggvorbis.
//
// The decoder wraps an Ogg Vorbis stream as an audio.Source. oggvorbis
// natively produces interleaved float32 samples in [-1.0, 1.0], so no
// conversion is needed on the way through.
package vorbis
