// SPDX-License-Identifier: EPL-2.0

package dac

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/hirusha/beamcast/audio"
)

// Config describes the frame format expected by the device for one write.
type Config struct {
	// SampleRate must equal the buffer's rate; mismatches are rejected.
	SampleRate int

	// BitDepth of a frame. Only 16 is supported.
	BitDepth int
}

// OpenFunc opens the device for writing. Injectable so tests can substitute
// an in-memory device, the same way decoders take an io.Reader.
type OpenFunc func(path string) (io.WriteCloser, error)

// maxConsecutiveFailures bounds the retry budget for a device write that
// makes no progress before the run is declared fatal.
const maxConsecutiveFailures = 3

// Writer drives the DAC device. The device is a singleton resource, so one
// Writer should be shared per device path; its mutex serializes concurrent
// callers around the whole open-write-close scope.
//
// A Writer holds no audio state between calls: the handle is opened per
// write and released on every exit path.
type Writer struct {
	path string
	open OpenFunc

	mu sync.Mutex
}

// New returns a Writer for the device file at path.
func New(path string) *Writer {
	return NewWithOpener(path, func(path string) (io.WriteCloser, error) {
		return os.OpenFile(path, os.O_WRONLY, 0)
	})
}

// NewWithOpener returns a Writer with a custom device opener.
func NewWithOpener(path string, open OpenFunc) *Writer {
	return &Writer{path: path, open: open}
}

// Write serializes the buffer to 16-bit frames and streams them to the
// device in playback order. Partial writes are continued until every frame
// is written; a device that keeps failing without progress aborts the run
// with a *WriteError carrying the number of frames that made it out. The
// handle is closed on every exit path.
//
// The underlying device write is allowed to block on back-pressure; Write
// propagates the blocking rather than polling.
func (w *Writer) Write(b *audio.Buffer, cfg Config) (err error) {
	if cfg.SampleRate != b.Rate {
		return fmt.Errorf("%w: buffer %d Hz, device %d Hz", ErrRateMismatch, b.Rate, cfg.SampleRate)
	}

	data, err := encodeFrames(b.Data, cfg.BitDepth)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	dev, err := w.open(w.path)
	if err != nil {
		return &OpenError{Path: w.path, Err: err}
	}
	defer func() {
		if cerr := dev.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("dac: close %q: %w", w.path, cerr)
		}
	}()

	written := 0
	failures := 0
	for written < len(data) {
		n, werr := dev.Write(data[written:])
		written += n

		if n > 0 {
			failures = 0
		}
		if werr == nil && n > 0 {
			continue
		}

		if werr == nil {
			werr = io.ErrShortWrite
		}
		failures++
		if failures >= maxConsecutiveFailures {
			return &WriteError{FramesWritten: written / frameBytes, Err: werr}
		}
		slog.Debug("dac: retrying device write",
			"device", w.path, "written", written, "total", len(data), "err", werr)
	}

	slog.Debug("dac: wrote buffer",
		"device", w.path, "frames", written/frameBytes, "rate", cfg.SampleRate)
	return nil
}
