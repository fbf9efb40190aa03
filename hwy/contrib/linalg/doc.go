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

// Package linalg provides 4-wide float32 vectors, column-major 4x4 matrices
// and quaternions whose operations run on SIMD kernel tables selected at
// runtime.
//
// # Backends
//
// Every operation that benefits from SIMD goes through a kernel table.
// Three tables are registered:
//
//   - "scalar": pure Go, always available, exact reference results
//   - "sse": 128-bit archsimd kernels (amd64, GOEXPERIMENT=simd); the
//     archsimd code is VEX encoded, so this needs AVX2
//   - "fma": the sse table with fused multiply-add in the product and
//     interpolation kernels (requires AVX2 and FMA)
//
// The highest priority table supported by hwy.CurrentCaps is selected at
// init. HWY_NO_SIMD forces "scalar" and HWY_NO_FMA skips "fma".
// UseBackend and Reselect change the selection; neither is safe to call
// while other goroutines run kernels.
//
// # Numerics
//
// The SIMD Rsqrt and Normalize kernels start from the hardware reciprocal
// square root estimate (about 12 bits) and apply one Newton-Raphson step,
// giving roughly 22 correct bits. Mat4 inverse and determinant use cofactor
// expansion with the 2x2 sub-determinants computed four lanes at a time.
// Quaternion products broadcast each component of the left operand against
// sign-permuted copies of the right operand.
//
// Near-zero magnitudes produce zero-valued results instead of Inf/NaN:
// Normalize of a vector shorter than math.Epsilon32, Quat.Inverse of a
// near-zero quaternion and Mat4.Inverse of a matrix whose determinant is at
// most math.DetEpsilon all return zero values.
//
// # Example
//
//	m := linalg.Translation(1, 2, 3).Mul(linalg.RotationY(math.HalfPi32))
//	p := m.TransformPoint(linalg.Point(1, 0, 0))
//	q := linalg.QuatFromAxisAngle(linalg.Direction(0, 0, 1), 0.5)
//	v := q.Rotate(linalg.Direction(1, 0, 0)).Normalize()
package linalg
