// SPDX-License-Identifier: EPL-2.0

package beamcast

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hirusha/beamcast/audio"
	"github.com/hirusha/beamcast/config"
	"github.com/hirusha/beamcast/dac"
	"github.com/hirusha/beamcast/formats/aiff"
	"github.com/hirusha/beamcast/formats/mp3"
	"github.com/hirusha/beamcast/formats/vorbis"
	"github.com/hirusha/beamcast/formats/wav"
	"github.com/hirusha/beamcast/utils"
)

// DefaultRegistry returns a registry with every decoder in this module
// registered under its usual file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// fileSource keeps the backing file open for the lifetime of a streaming
// decode and closes both on Close.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	serr := s.Source.Close()
	ferr := s.f.Close()
	if serr != nil {
		return serr
	}
	return ferr
}

// DecodeFile opens path and decodes it with the decoder registered for its
// extension. Returns audio.ErrUnsupportedFormat when no decoder matches.
// The returned source owns the file handle; Close releases it.
func DecodeFile(reg *audio.Registry, path string) (audio.Source, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// Process runs the full signal chain on src and returns the
// carrier-modulated buffer at the target rate:
//
//	load → mono → normalize → pre-emphasis → oversample → modulate
//
// Each stage consumes its input fully before the next starts; no state is
// shared between concurrent Process calls.
func Process(src audio.Source, cfg *config.Config) (*audio.Buffer, error) {
	p := &audio.Processor{
		TargetRate: cfg.TargetSampleRate,
		Alpha:      cfg.PreEmphasisAlpha,
		Quality:    cfg.OversampleQuality.Audio(),
	}

	buf, err := p.Load(src)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded source",
		"rate", buf.Rate, "channels", buf.Channels, "frames", buf.Frames())

	buf = p.ToMono(buf)
	buf = p.Normalize(buf)
	buf = p.PreEmphasize(buf)

	buf, err = p.Oversample(buf, cfg.TargetSampleRate)
	if err != nil {
		return nil, err
	}
	slog.Debug("oversampled", "rate", buf.Rate, "samples", len(buf.Data))

	return audio.Modulate(buf, cfg.CarrierFrequency, cfg.ModulationIndex)
}

// Transmit processes src and streams the modulated result to the DAC.
func Transmit(src audio.Source, cfg *config.Config, w *dac.Writer) error {
	buf, err := Process(src, cfg)
	if err != nil {
		return err
	}

	err = w.Write(buf, dac.Config{
		SampleRate: cfg.TargetSampleRate,
		BitDepth:   cfg.BitDepth,
	})
	if err != nil {
		return err
	}

	slog.Info("transmitted buffer",
		"frames", len(buf.Data), "rate", buf.Rate,
		"carrier_hz", cfg.CarrierFrequency, "index", cfg.ModulationIndex)
	return nil
}

// SaveWAV writes a buffer to path as mono 16-bit PCM WAV. Samples outside
// [-1, 1] (a modulated buffer reaches ±(1+index)) clip during conversion,
// so this is mainly useful for inspecting the pre-modulation stages.
func SaveWAV(buf *audio.Buffer, path string) error {
	pcm16 := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		pcm16[i] = utils.Float64ToInt16(v)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	return wav.Write16(f, buf.Rate, pcm16)
}
