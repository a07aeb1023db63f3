// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestModulate_ZeroIndexIsPureCarrier(t *testing.T) {
	t.Parallel()

	// With index 0 the envelope is constant: the output is the bare
	// carrier regardless of the audio content.
	in := sineBuffer(192000, 1000, 1000, 1.0)

	out, err := Modulate(in, 40000, 0)
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}

	for n, v := range out.Data {
		want := math.Cos(2 * math.Pi * 40000 * float64(n) / 192000)
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("out.Data[%d] = %v, want %v", n, v, want)
		}
	}
}

func TestModulate_FullScaleConstant(t *testing.T) {
	t.Parallel()

	// Constant 1.0 input, carrier 40 kHz, index 0.9, rate 192 kHz:
	// y[n] = 1.9 * cos(2π·40000·n/192000).
	in := &Buffer{Data: make([]float64, 960), Rate: 192000, Channels: 1}
	for i := range in.Data {
		in.Data[i] = 1.0
	}

	out, err := Modulate(in, 40000, 0.9)
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}

	for n, v := range out.Data {
		want := 1.9 * math.Cos(2*math.Pi*40000*float64(n)/192000)
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("out.Data[%d] = %v, want %v", n, v, want)
		}
	}
}

func TestModulate_OutputRange(t *testing.T) {
	t.Parallel()

	in := sineBuffer(192000, 19200, 1000, 1.0)

	out, err := Modulate(in, 40000, 0.9)
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}

	// Not re-normalized: the envelope may exceed [-1, 1] but never
	// ±(1+index).
	for n, v := range out.Data {
		if math.Abs(v) > 1.9 {
			t.Fatalf("out.Data[%d] = %v, outside ±1.9", n, v)
		}
	}
}

func TestModulate_PhaseContinuity(t *testing.T) {
	t.Parallel()

	// The carrier phase must not drift over a long buffer: deep into the
	// signal it still matches cos(2π·fc·n/fs) computed directly.
	in := &Buffer{Data: make([]float64, 500000), Rate: 192000, Channels: 1}

	out, err := Modulate(in, 40000, 1)
	if err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}

	for _, n := range []int{0, 1, 191999, 250000, 499999} {
		want := math.Cos(2 * math.Pi * 40000 * float64(n) / 192000)
		if math.Abs(out.Data[n]-want) > 1e-9 {
			t.Errorf("out.Data[%d] = %v, want %v", n, out.Data[n], want)
		}
	}
}

func TestModulate_InvalidIndex(t *testing.T) {
	t.Parallel()

	in := sineBuffer(192000, 100, 1000, 0.5)

	for _, index := range []float64{-0.1, 1.0001, 2} {
		_, err := Modulate(in, 40000, index)
		if !errors.Is(err, ErrInvalidModulationIndex) {
			t.Errorf("Modulate(index=%v) error = %v, want ErrInvalidModulationIndex", index, err)
		}
	}
}

func TestModulate_InvalidCarrier(t *testing.T) {
	t.Parallel()

	in := sineBuffer(192000, 100, 1000, 0.5)

	// Zero, negative, at Nyquist and above Nyquist are all rejected.
	for _, fc := range []float64{0, -40000, 96000, 100000} {
		_, err := Modulate(in, fc, 0.9)
		if !errors.Is(err, ErrInvalidCarrierFrequency) {
			t.Errorf("Modulate(fc=%v) error = %v, want ErrInvalidCarrierFrequency", fc, err)
		}
	}
}

func TestModulate_EmptyBuffer(t *testing.T) {
	t.Parallel()

	in := &Buffer{Data: nil, Rate: 192000, Channels: 1}
	_, err := Modulate(in, 40000, 0.9)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Modulate() error = %v, want ErrEmptyInput", err)
	}
}

func TestModulate_NotMono(t *testing.T) {
	t.Parallel()

	in := &Buffer{Data: make([]float64, 8), Rate: 192000, Channels: 2}
	_, err := Modulate(in, 40000, 0.9)
	if !errors.Is(err, ErrNotMono) {
		t.Errorf("Modulate() error = %v, want ErrNotMono", err)
	}
}

func TestModulate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := sineBuffer(192000, 100, 1000, 0.5)
	orig := make([]float64, len(in.Data))
	copy(orig, in.Data)

	if _, err := Modulate(in, 40000, 0.9); err != nil {
		t.Fatalf("Modulate() error = %v", err)
	}

	for i := range orig {
		if in.Data[i] != orig[i] {
			t.Fatal("Modulate() mutated its input buffer")
		}
	}
}
