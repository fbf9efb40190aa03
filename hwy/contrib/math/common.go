// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import (
	stdmath "math"

	"github.com/ajroetker/hwymath/hwy"
)

// Abs returns |x|.
func Abs[T hwy.Floats](x T) T {
	if x < 0 {
		return -x
	}
	// Also turns -0 into +0.
	return x + 0
}

// Min returns a < b ? a : b, the MINPS operand rule: when either input is
// NaN the result is b.
func Min[T hwy.Floats](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns a > b ? a : b, with the same NaN rule as Min.
func Max[T hwy.Floats](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi]. NaN passes through.
func Clamp[T hwy.Floats](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate clamps x to [0, 1].
func Saturate[T hwy.Floats](x T) T {
	return Clamp(x, 0, 1)
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign[T hwy.Floats](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Lerp returns a + (b-a)*t.
func Lerp[T hwy.Floats](a, b, t T) T {
	return a + (b-a)*t
}

// InverseLerp returns t such that Lerp(a, b, t) == x.
// It returns 0 when a == b.
func InverseLerp[T hwy.Floats](a, b, x T) T {
	if a == b {
		return 0
	}
	return (x - a) / (b - a)
}

// SmoothStep is the Hermite interpolation between edge0 and edge1.
func SmoothStep[T hwy.Floats](edge0, edge1, x T) T {
	t := Saturate(InverseLerp(edge0, edge1, x))
	return t * t * (3 - 2*t)
}

// ApproxEqual reports whether |a-b| <= eps.
// Two NaNs are not equal; equal infinities are.
func ApproxEqual[T hwy.Floats](a, b, eps T) bool {
	if a == b {
		return true
	}
	return Abs(a-b) <= eps
}

// ApproxEqualRel reports whether |a-b| <= eps*max(1, |a|, |b|).
func ApproxEqualRel[T hwy.Floats](a, b, eps T) bool {
	if a == b {
		return true
	}
	scale := max(T(1), Abs(a), Abs(b))
	return Abs(a-b) <= eps*scale
}

// IsNearZero reports whether |x| <= eps.
func IsNearZero[T hwy.Floats](x, eps T) bool {
	return Abs(x) <= eps
}

// IsFinite32 reports whether x is neither NaN nor ±Inf.
func IsFinite32(x float32) bool {
	return !stdmath.IsNaN(float64(x)) && !stdmath.IsInf(float64(x), 0)
}

// Radians converts degrees to radians.
func Radians[T hwy.Floats](deg T) T {
	return deg * T(stdmath.Pi/180)
}

// Degrees converts radians to degrees.
func Degrees[T hwy.Floats](rad T) T {
	return rad * T(180/stdmath.Pi)
}
