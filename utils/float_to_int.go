// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16 converts a float64 sample to 16-bit PCM by scaling with
// 32767, rounding to nearest and hard-clamping to the int16 range. Values
// outside [-1, 1] clip instead of wrapping.
func Float64ToInt16(x float64) int16 {
	v := math.Round(x * 32767.0)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
