// SPDX-License-Identifier: GPL-2.0-or-later

package math

type Number interface {
	int64 | float64 | float32 | int | int32
}

type Float interface {
	float32 | float64
}

func Clamp[K Number](min, val, max K) K {
	if min > val {
		return min
	} else if max < val {
		return max
	}
	return val
}

// Lerp returns a when frac is 0 and b when frac is 1.
func Lerp[K Float](a, b, frac K) K {
	return a + (b-a)*frac
}
