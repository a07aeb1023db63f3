// SPDX-License-Identifier: EPL-2.0

// Package dac serializes modulated audio buffers into fixed-width binary
// frames and streams them to the DAC device file behind a parametric
// speaker array.
//
// The device is treated as a byte-oriented sink: 16-bit signed little-endian
// frames, one per sample, in playback order. Float samples are scaled by
// 32767, rounded and hard-clipped; the modulated signal intentionally
// exceeds [-1, 1], so clipping here is the defined behavior, not an error.
//
// The device handle is scoped to a single Write call: open, write all
// frames, close on every exit path. A Writer's mutex serializes concurrent
// callers because the device is a singleton resource.
package dac
