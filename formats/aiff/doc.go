// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF decoding via github.com/go-audio/aiff.
//
// The decoder wraps a 16-bit PCM AIFF stream as an audio.Source delivering
// float32 samples in [-1.0, 1.0]. Other bit depths are rejected.
package aiff
