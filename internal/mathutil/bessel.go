// SPDX-License-Identifier: EPL-2.0

// Package mathutil provides the special functions needed for Kaiser
// windowed-sinc filter design.
package mathutil

import "math"

// Polynomial coefficients for the I0 approximations
// (Abramowitz & Stegun 9.8.1 and 9.8.2).
const (
	besselSmallArgThreshold = 3.75

	besselI0Coeff1 = 3.5156229
	besselI0Coeff2 = 3.0899424
	besselI0Coeff3 = 1.2067492
	besselI0Coeff4 = 0.2659732
	besselI0Coeff5 = 0.0360768
	besselI0Coeff6 = 0.0045813

	besselI0AsympCoeff0 = 0.39894228
	besselI0AsympCoeff1 = 0.01328592
	besselI0AsympCoeff2 = 0.00225319
	besselI0AsympCoeff3 = -0.00157565
	besselI0AsympCoeff4 = 0.00916281
	besselI0AsympCoeff5 = -0.02057706
	besselI0AsympCoeff6 = 0.02635537
	besselI0AsympCoeff7 = -0.01647633
	besselI0AsympCoeff8 = 0.00392377
)

// Kaiser & Schafer attenuation breakpoints for the beta formula.
const (
	kaiserAttHigh   = 50.0
	kaiserAttMedium = 21.0

	kaiserBetaHighCoeff1   = 0.1102
	kaiserBetaHighOffset   = 8.7
	kaiserBetaMediumCoeff1 = 0.5842
	kaiserBetaMediumPower  = 0.4
	kaiserBetaMediumCoeff2 = 0.07886
)

// BesselI0 computes the modified Bessel function of the first kind, order
// zero: I0(x). It is the kernel of the Kaiser window.
//
// Accuracy is around 7 significant digits, which is ample for window
// evaluation against an 80 dB stopband target.
func BesselI0(x float64) float64 {
	ax := math.Abs(x)

	if ax < besselSmallArgThreshold {
		t := x / besselSmallArgThreshold
		t *= t
		return 1.0 + t*(besselI0Coeff1+t*(besselI0Coeff2+t*(besselI0Coeff3+
			t*(besselI0Coeff4+t*(besselI0Coeff5+t*besselI0Coeff6)))))
	}

	t := besselSmallArgThreshold / ax
	poly := besselI0AsympCoeff0 + t*(besselI0AsympCoeff1+t*(besselI0AsympCoeff2+
		t*(besselI0AsympCoeff3+t*(besselI0AsympCoeff4+t*(besselI0AsympCoeff5+
			t*(besselI0AsympCoeff6+t*(besselI0AsympCoeff7+t*besselI0AsympCoeff8)))))))

	return math.Exp(ax) * poly / math.Sqrt(ax)
}

// KaiserBeta computes the Kaiser window beta parameter for a desired
// stopband attenuation in dB, per the Kaiser & Schafer formula:
//
//	att > 50 dB:        beta = 0.1102·(att − 8.7)
//	21 < att ≤ 50 dB:   beta = 0.5842·(att − 21)^0.4 + 0.07886·(att − 21)
//	att ≤ 21 dB:        beta = 0
func KaiserBeta(attenuation float64) float64 {
	if attenuation > kaiserAttHigh {
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	}
	if attenuation >= kaiserAttMedium {
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) +
			kaiserBetaMediumCoeff2*delta
	}
	return 0.0
}

// KaiserTap evaluates the continuous Kaiser window at position r in [-1, 1]
// (window edges at ±1). i0beta must be BesselI0(beta); callers hoist it out
// of their tap loops. Outside [-1, 1] the window is zero.
func KaiserTap(r, beta, i0beta float64) float64 {
	if r < -1 || r > 1 {
		return 0
	}
	return BesselI0(beta*math.Sqrt(1-r*r)) / i0beta
}
