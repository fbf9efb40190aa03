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

// Package math provides the scalar math functions the linalg kernels call
// into: square roots and reciprocal square roots, the trigonometry used by
// quaternion construction and interpolation, epsilon comparisons, and
// interpolation helpers.
//
// # Reciprocal square root
//
// FastInvSqrt32 mirrors what the SIMD kernels do with the hardware estimate:
// start from a coarse approximation and refine it with Newton-Raphson steps,
//
//	y' = y * (1.5 - 0.5*x*y*y)
//
// Each step roughly doubles the number of correct bits. InvSqrt32 is the
// exact (correctly rounded through float64) reference.
//
// # Trigonometry
//
// Sin32, Cos32 and SinCos32 use Cody-Waite style range reduction to
// [-π/4, π/4] followed by short minimax-like polynomials, the same scheme
// the vectorized kernels use. Maximum absolute error is below 1e-6 on the
// reduced range.
//
// # Comparisons
//
// ApproxEqual compares with an absolute tolerance and ApproxEqualRel scales
// the tolerance by the magnitude of the operands, which is what matrix and
// quaternion identity checks want.
package math
