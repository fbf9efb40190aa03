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

// =============================================================================
// Constants shared by the kernels
// =============================================================================

const (
	// Epsilon32 is the magnitude below which float32 vectors and
	// quaternions are treated as zero.
	Epsilon32 float32 = 1e-6

	// Epsilon64 is the float64 counterpart of Epsilon32.
	Epsilon64 float64 = 1e-12

	// DetEpsilon is the determinant magnitude below which a float32
	// matrix is treated as singular.
	DetEpsilon float32 = 1e-30
)

// Float32 angle constants
const (
	Pi32     float32 = 3.1415926535897932
	TwoPi32  float32 = 6.2831853071795865
	HalfPi32 float32 = 1.5707963267948966

	piOver4_32 float32 = 0.7853981633974483
)

// Polynomial coefficients for sin(x) on [-π/4, π/4]:
// sin(x) ≈ x * (1 + s1*x² + s2*x⁴ + s3*x⁶)
const (
	sinS1_f32 float32 = -0.16666666666666666   // -1/3!
	sinS2_f32 float32 = 0.008333333333333333   // 1/5!
	sinS3_f32 float32 = -0.0001984126984126984 // -1/7!
)

// Polynomial coefficients for cos(x) on [-π/4, π/4]:
// cos(x) ≈ 1 + c1*x² + c2*x⁴ + c3*x⁶ + c4*x⁸
const (
	cosC1_f32 float32 = -0.5
	cosC2_f32 float32 = 0.041666666666666664  // 1/4!
	cosC3_f32 float32 = -0.001388888888888889 // -1/6!
	cosC4_f32 float32 = 2.48015873015873e-05  // 1/8!
)

// rsqrtMagic is the bit-level seed constant for FastInvSqrt32.
const rsqrtMagic uint32 = 0x5f375a86
