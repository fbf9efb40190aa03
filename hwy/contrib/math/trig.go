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

import stdmath "math"

// rangeReduce32 reduces x to [-π/4, π/4] and returns the reduced value and
// the quadrant (0-3). The 2π reduction runs in float64 to keep precision
// for large arguments.
func rangeReduce32(x float32) (reduced float32, quadrant int) {
	// Reduce to [-π, π]
	if x > Pi32 || x < -Pi32 {
		// x = x - 2π * round(x / (2π))
		xd := float64(x)
		k := stdmath.Round(xd / (2 * stdmath.Pi))
		x = float32(xd - k*2*stdmath.Pi)
	}

	// Determine quadrant and reduce to [-π/4, π/4]
	if x >= 0 {
		if x <= piOver4_32 {
			return x, 0
		} else if x <= 3*piOver4_32 {
			return HalfPi32 - x, 1
		}
		return x - Pi32, 2
	}
	if x >= -piOver4_32 {
		return x, 0
	} else if x >= -3*piOver4_32 {
		return -HalfPi32 - x, 3
	}
	return x + Pi32, 2
}

func sinPoly32(r, r2 float32) float32 {
	return r * (1 + r2*(sinS1_f32+r2*(sinS2_f32+r2*sinS3_f32)))
}

func cosPoly32(r2 float32) float32 {
	return 1 + r2*(cosC1_f32+r2*(cosC2_f32+r2*(cosC3_f32+r2*cosC4_f32)))
}

// SinCos32 computes sin(x) and cos(x) sharing one range reduction.
// NaN and ±Inf produce NaN for both.
func SinCos32(x float32) (sin, cos float32) {
	if x != x || stdmath.IsInf(float64(x), 0) {
		nan := float32(stdmath.NaN())
		return nan, nan
	}

	r, quadrant := rangeReduce32(x)
	r2 := r * r
	s := sinPoly32(r, r2)
	c := cosPoly32(r2)

	switch quadrant {
	case 0: // [-π/4, π/4]
		return s, c
	case 1: // [π/4, 3π/4], reduced = π/2 - x
		return c, s
	case 2: // beyond ±3π/4, reduced = x ∓ π
		return -s, -c
	default: // [-3π/4, -π/4], reduced = -π/2 - x
		return -c, -s
	}
}

// Sin32 computes sin(x) for float32.
func Sin32(x float32) float32 {
	s, _ := SinCos32(x)
	return s
}

// Cos32 computes cos(x) for float32.
func Cos32(x float32) float32 {
	_, c := SinCos32(x)
	return c
}

// Acos32 computes acos(x) with x clamped to [-1, 1], so rounding noise in
// a dot product of unit vectors never produces NaN. NaN input stays NaN.
func Acos32(x float32) float32 {
	return float32(stdmath.Acos(float64(Clamp(x, -1, 1))))
}

// Atan2_32 computes atan2(y, x) for float32.
func Atan2_32(y, x float32) float32 {
	return float32(stdmath.Atan2(float64(y), float64(x)))
}

// Tan32 computes tan(x) for float32.
func Tan32(x float32) float32 {
	s, c := SinCos32(x)
	return s / c
}
