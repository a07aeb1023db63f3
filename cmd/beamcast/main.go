// SPDX-License-Identifier: EPL-2.0

// Command beamcast plays an audio file through a parametric speaker DAC:
// it decodes the file, runs the ultrasonic AM pipeline and streams the
// frames to the configured device.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hirusha/beamcast"
	"github.com/hirusha/beamcast/config"
	"github.com/hirusha/beamcast/dac"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults built in)")
	wavOut := flag.String("wav", "", "optional path to dump the processed buffer as WAV instead of writing to the device")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: beamcast [-config config.yaml] [-wav out.wav] <input.{wav|mp3|ogg|aiff}>")
		os.Exit(1)
	}
	input := flag.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel.Level(),
	}))
	slog.SetDefault(logger)

	slog.Info("beamcast starting",
		"input", input,
		"target_rate", cfg.TargetSampleRate,
		"carrier_hz", cfg.CarrierFrequency,
		"index", cfg.ModulationIndex,
		"device", cfg.DevicePath)

	src, err := beamcast.DecodeFile(beamcast.DefaultRegistry(), input)
	if err != nil {
		slog.Error("decode failed", "err", err)
		os.Exit(1)
	}
	defer src.Close()

	if *wavOut != "" {
		buf, err := beamcast.Process(src, cfg)
		if err != nil {
			slog.Error("processing failed", "err", err)
			os.Exit(1)
		}
		if err := beamcast.SaveWAV(buf, *wavOut); err != nil {
			slog.Error("wav dump failed", "err", err)
			os.Exit(1)
		}
		slog.Info("wrote wav dump", "path", *wavOut, "samples", len(buf.Data))
		return
	}

	if err := beamcast.Transmit(src, cfg, dac.New(cfg.DevicePath)); err != nil {
		slog.Error("transmit failed", "err", err)
		os.Exit(1)
	}
}
