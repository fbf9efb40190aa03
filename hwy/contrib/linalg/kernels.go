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

package linalg

// vec4Kernels is the Vec4 operation table a backend provides.
type vec4Kernels struct {
	add        func(a, b Vec4) Vec4
	sub        func(a, b Vec4) Vec4
	mul        func(a, b Vec4) Vec4
	div        func(a, b Vec4) Vec4
	min        func(a, b Vec4) Vec4
	max        func(a, b Vec4) Vec4
	scale      func(a Vec4, s float32) Vec4
	neg        func(a Vec4) Vec4
	abs        func(a Vec4) Vec4
	sqrt       func(a Vec4) Vec4
	rsqrt      func(a Vec4) Vec4
	reciprocal func(a Vec4) Vec4
	normalize  func(a Vec4) Vec4
	normalize3 func(a Vec4) Vec4
	mulAdd     func(a, b, c Vec4) Vec4
	lerp       func(a, b Vec4, t float32) Vec4
	clamp      func(a, lo, hi Vec4) Vec4
	dot        func(a, b Vec4) float32
	dot3       func(a, b Vec4) float32
	cross3     func(a, b Vec4) Vec4
}

// mat4Kernels is the Mat4 operation table. Matrices are passed by pointer.
type mat4Kernels struct {
	add         func(a, b *Mat4) Mat4
	sub         func(a, b *Mat4) Mat4
	mul         func(a, b *Mat4) Mat4
	scale       func(a *Mat4, s float32) Mat4
	mulVec      func(m *Mat4, v Vec4) Vec4
	vecMul      func(v Vec4, m *Mat4) Vec4
	transpose   func(m *Mat4) Mat4
	determinant func(m *Mat4) float32
	inverse     func(m *Mat4) Mat4
}

// quatKernels is the Quat operation table.
type quatKernels struct {
	add       func(a, b Quat) Quat
	sub       func(a, b Quat) Quat
	mul       func(a, b Quat) Quat
	scale     func(a Quat, s float32) Quat
	neg       func(a Quat) Quat
	conjugate func(a Quat) Quat
	normalize func(a Quat) Quat
	inverse   func(a Quat) Quat
	dot       func(a, b Quat) float32
	rotate    func(q Quat, v Vec4) Vec4
	toMat4    func(q Quat) Mat4
}
