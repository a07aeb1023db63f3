// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/hirusha/beamcast/internal/mathutil"
	"github.com/hirusha/beamcast/utils"
)

// Quality selects the interpolation method used by Oversample.
type Quality int

const (
	// QualityHigh uses Kaiser windowed-sinc interpolation. Band-limited:
	// content below the narrower Nyquist frequency is preserved and no new
	// energy is introduced above it.
	QualityHigh Quality = iota

	// QualityFast uses Catmull-Rom cubic interpolation. Much cheaper, with
	// some imaging above the source Nyquist; acceptable for previewing.
	QualityFast
)

// Windowed-sinc design parameters. The kernel spans sincHalfWidth source
// samples per side (scaled by the decimation ratio when downsampling), the
// cutoff sits at cutoffRolloff of the narrower Nyquist band, and the Kaiser
// beta is derived from stopbandAtten dB.
const (
	sincHalfWidth = 32
	stopbandAtten = 80.0
	cutoffRolloff = 0.91

	sincZeroThreshold = 1e-12
)

// Oversample resamples a mono buffer to targetRate. Output length is
// round(len * targetRate / b.Rate). Works for both up- and downsampling;
// the anti-imaging/anti-aliasing cutoff follows the lower of the two rates.
func (p *Processor) Oversample(b *Buffer, targetRate int) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidRate
	}
	if b.Channels > 1 {
		return nil, ErrNotMono
	}
	if targetRate == b.Rate {
		return b.Clone(), nil
	}

	outLen := int(math.Round(float64(len(b.Data)) * float64(targetRate) / float64(b.Rate)))
	out := &Buffer{
		Data:     make([]float64, outLen),
		Rate:     targetRate,
		Channels: 1,
	}
	if outLen == 0 || len(b.Data) == 0 {
		return out, nil
	}

	switch p.Quality {
	case QualityFast:
		cubicResample(b.Data, out.Data, b.Rate, targetRate)
	default:
		sincResample(b.Data, out.Data, b.Rate, targetRate)
	}

	return out, nil
}

// sincResample evaluates a continuous Kaiser windowed-sinc kernel at each
// output instant. Per-sample kernel-sum normalization keeps DC gain at 1
// and compensates truncation at the buffer edges.
func sincResample(in, out []float64, inRate, outRate int) {
	step := float64(inRate) / float64(outRate)

	// Cutoff normalized to the input rate, below the narrower Nyquist.
	cutoff := cutoffRolloff * 0.5
	if step > 1 {
		cutoff /= step
	}

	halfWidth := float64(sincHalfWidth)
	if step > 1 {
		// Widen the kernel when decimating so it still spans
		// sincHalfWidth output-rate zero crossings.
		halfWidth *= step
	}

	beta := mathutil.KaiserBeta(stopbandAtten)
	i0beta := mathutil.BesselI0(beta)

	for n := range out {
		center := float64(n) * step

		lo := int(math.Ceil(center - halfWidth))
		if lo < 0 {
			lo = 0
		}
		hi := int(math.Floor(center + halfWidth))
		if hi > len(in)-1 {
			hi = len(in) - 1
		}

		var acc, wsum float64
		for k := lo; k <= hi; k++ {
			x := float64(k) - center

			var s float64
			if math.Abs(x) < sincZeroThreshold {
				s = 2 * cutoff
			} else {
				s = math.Sin(2*math.Pi*cutoff*x) / (math.Pi * x)
			}

			r := x / halfWidth
			w := s * mathutil.KaiserTap(r, beta, i0beta)

			acc += in[k] * w
			wsum += w
		}

		if math.Abs(wsum) > sincZeroThreshold {
			out[n] = acc / wsum
		}
	}
}

// cubicResample interpolates with a Catmull-Rom spline over four neighbours,
// clamping indices at the edges.
func cubicResample(in, out []float64, inRate, outRate int) {
	step := float64(inRate) / float64(outRate)
	last := len(in) - 1

	at := func(i int) float64 {
		if i < 0 {
			i = 0
		} else if i > last {
			i = last
		}
		return in[i]
	}

	for n := range out {
		pos := float64(n) * step
		i := int(math.Floor(pos))
		frac := pos - float64(i)

		out[n] = utils.CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), frac)
	}
}
