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

// Sqrt32 computes sqrt(x) for float32, correctly rounded through float64.
func Sqrt32(x float32) float32 {
	return float32(stdmath.Sqrt(float64(x)))
}

// InvSqrt32 computes 1/sqrt(x). InvSqrt32(0) is +Inf and negative input
// yields NaN.
func InvSqrt32(x float32) float32 {
	return float32(1 / stdmath.Sqrt(float64(x)))
}

// NewtonRaphsonRsqrt32 performs one Newton-Raphson refinement step of an
// estimate y of 1/sqrt(x). The linalg SIMD Rsqrt kernels apply the same step
// lane-wise to the hardware estimate.
func NewtonRaphsonRsqrt32(x, y float32) float32 {
	return y * (1.5 - 0.5*x*y*y)
}

// FastInvSqrt32 approximates 1/sqrt(x) from a bit-level seed refined by two
// Newton-Raphson steps. Relative error is below 1e-5 for positive normal x.
//
// Special cases:
//   - FastInvSqrt32(0) = +Inf
//   - FastInvSqrt32(+Inf) = 0
//   - FastInvSqrt32(x) = NaN if x < 0 or x is NaN
func FastInvSqrt32(x float32) float32 {
	switch {
	case x == 0:
		return float32(stdmath.Inf(1))
	case x < 0 || x != x:
		return float32(stdmath.NaN())
	case stdmath.IsInf(float64(x), 1):
		return 0
	}
	y := stdmath.Float32frombits(rsqrtMagic - stdmath.Float32bits(x)>>1)
	y = NewtonRaphsonRsqrt32(x, y)
	return NewtonRaphsonRsqrt32(x, y)
}
