// SPDX-License-Identifier: EPL-2.0

package dac

import (
	"errors"
	"fmt"
)

var (
	// ErrRateMismatch is returned when the buffer sample rate differs from
	// the configured device rate. There is no implicit resampling at the
	// device boundary.
	ErrRateMismatch = errors.New("buffer sample rate does not match device rate")

	// ErrUnsupportedBitDepth is returned for bit depths the frame encoder
	// cannot produce.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)

// OpenError reports a failure to open the DAC device (missing, busy,
// permission denied).
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("dac: open %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// WriteError reports a fatal device write after the retry budget is
// exhausted. FramesWritten counts the frames the device accepted before the
// failure.
type WriteError struct {
	FramesWritten int
	Err           error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("dac: write failed after %d frames: %v", e.FramesWritten, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
