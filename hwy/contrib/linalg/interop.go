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

import "golang.org/x/image/math/f32"

// F32 returns v as an x/image vector.
func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4(v.Array())
}

// FromF32Vec4 converts an x/image vector.
func FromF32Vec4(v f32.Vec4) Vec4 {
	return Vec4{v[0], v[1], v[2], v[3]}
}

// F32 returns m in the row-major layout of x/image.
func (m Mat4) F32() f32.Mat4 {
	t := baseMat4Transpose(&m)
	return f32.Mat4(t.Array())
}

// FromF32Mat4 converts a row-major x/image matrix.
func FromF32Mat4(a f32.Mat4) Mat4 {
	t := Mat4FromSlice(a[:])
	return baseMat4Transpose(&t)
}

// F32Mat3 returns the upper-left 3x3 block of m in row-major order.
func (m Mat4) F32Mat3() f32.Mat3 {
	return f32.Mat3{
		m.Cols[0].X, m.Cols[1].X, m.Cols[2].X,
		m.Cols[0].Y, m.Cols[1].Y, m.Cols[2].Y,
		m.Cols[0].Z, m.Cols[1].Z, m.Cols[2].Z,
	}
}

// F32Aff3 returns the 2D affine part of m (the x and y rows, with the
// translation from column 3) in the layout used by x/image/draw.
func (m Mat4) F32Aff3() f32.Aff3 {
	return f32.Aff3{
		m.Cols[0].X, m.Cols[1].X, m.Cols[3].X,
		m.Cols[0].Y, m.Cols[1].Y, m.Cols[3].Y,
	}
}
