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

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

// Mat4 is a 4x4 float32 matrix stored as four columns.
//
// Cols[c] is column c, so element (row r, column c) is Cols[c].At(r).
// Vectors are columns: m.MulVec(v) computes m*v.
type Mat4 struct {
	Cols [4]Vec4
}

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{Cols: [4]Vec4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Mat4FromCols builds a matrix from its columns.
func Mat4FromCols(c0, c1, c2, c3 Vec4) Mat4 {
	return Mat4{Cols: [4]Vec4{c0, c1, c2, c3}}
}

// Mat4FromRows builds a matrix from its rows.
func Mat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4FromCols(r0, r1, r2, r3).Transpose()
}

// Mat4FromSlice builds a matrix from 16 column-major values.
// It panics if s has fewer than 16 elements.
func Mat4FromSlice(s []float32) Mat4 {
	if len(s) < 16 {
		panic("linalg: slice is too short for Mat4")
	}
	var m Mat4
	copy(m.elems()[:], s[:16])
	return m
}

// Diagonal4 returns the matrix with v on the diagonal.
func Diagonal4(v Vec4) Mat4 {
	return Mat4{Cols: [4]Vec4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, v.W},
	}}
}

// elems views m as 16 column-major floats.
func (m *Mat4) elems() *[16]float32 {
	return (*[16]float32)(unsafe.Pointer(m))
}

// Col returns column c. It panics if c is out of range.
func (m Mat4) Col(c int) Vec4 {
	if uint(c) >= 4 {
		panic(fmt.Sprintf("linalg: Mat4 column %d out of range", c))
	}
	return m.Cols[c]
}

// Row returns row r. It panics if r is out of range.
func (m Mat4) Row(r int) Vec4 {
	if uint(r) >= 4 {
		panic(fmt.Sprintf("linalg: Mat4 row %d out of range", r))
	}
	e := m.elems()
	return Vec4{e[r], e[4+r], e[8+r], e[12+r]}
}

// At returns the element at row r, column c. It panics if either index is
// out of range.
func (m Mat4) At(r, c int) float32 {
	if uint(r) >= 4 || uint(c) >= 4 {
		panic(fmt.Sprintf("linalg: Mat4 index (%d, %d) out of range", r, c))
	}
	return m.elems()[c*4+r]
}

// Set sets the element at row r, column c. It panics if either index is
// out of range.
func (m *Mat4) Set(r, c int, x float32) {
	if uint(r) >= 4 || uint(c) >= 4 {
		panic(fmt.Sprintf("linalg: Mat4 index (%d, %d) out of range", r, c))
	}
	m.elems()[c*4+r] = x
}

// Array returns the 16 elements in column-major order.
func (m Mat4) Array() [16]float32 {
	return *m.elems()
}

// Trace returns the sum of the diagonal.
func (m Mat4) Trace() float32 {
	return m.Cols[0].X + m.Cols[1].Y + m.Cols[2].Z + m.Cols[3].W
}

// String formats m row by row.
func (m Mat4) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := range 4 {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.Row(r).String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(n Mat4, eps float32) bool {
	for c := range 4 {
		if !m.Cols[c].ApproxEqual(n.Cols[c], eps) {
			return false
		}
	}
	return true
}

// Equal reports whether m and n are identical.
func (m Mat4) Equal(n Mat4) bool { return m == n }

// Add returns m + n.
func (m Mat4) Add(n Mat4) Mat4 { return active.mat.add(&m, &n) }

// Sub returns m - n.
func (m Mat4) Sub(n Mat4) Mat4 { return active.mat.sub(&m, &n) }

// Scale returns every element of m multiplied by s.
func (m Mat4) Scale(s float32) Mat4 { return active.mat.scale(&m, s) }

// Mul returns the matrix product m*n.
func (m Mat4) Mul(n Mat4) Mat4 { return active.mat.mul(&m, &n) }

// MulVec returns m*v with v as a column vector.
func (m Mat4) MulVec(v Vec4) Vec4 { return active.mat.mulVec(&m, v) }

// VecMul returns v*m with v as a row vector.
func (m Mat4) VecMul(v Vec4) Vec4 { return active.mat.vecMul(v, &m) }

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 { return active.mat.transpose(&m) }

// Determinant returns det(m).
func (m Mat4) Determinant() float32 { return active.mat.determinant(&m) }

// Inverse returns the inverse of m, or the zero matrix when
// |det(m)| <= math.DetEpsilon.
func (m Mat4) Inverse() Mat4 { return active.mat.inverse(&m) }

// TransformPoint transforms the point (p.X, p.Y, p.Z, 1). When the result
// has a W other than 0 or 1 the xyz components are divided by it and W is
// set to 1.
func (m Mat4) TransformPoint(p Vec4) Vec4 {
	r := active.mat.mulVec(&m, p.WithW(1))
	if r.W != 1 && r.W != 0 {
		inv := 1 / r.W
		return Vec4{r.X * inv, r.Y * inv, r.Z * inv, 1}
	}
	return r
}

// TransformDirection transforms (d.X, d.Y, d.Z, 0), ignoring translation.
func (m Mat4) TransformDirection(d Vec4) Vec4 {
	return active.mat.mulVec(&m, d.WithW(0))
}

// Translation returns a matrix translating by (x, y, z).
func Translation(x, y, z float32) Mat4 {
	m := Identity4()
	m.Cols[3] = Vec4{x, y, z, 1}
	return m
}

// Scaling returns a matrix scaling by (x, y, z).
func Scaling(x, y, z float32) Mat4 {
	return Diagonal4(Vec4{x, y, z, 1})
}

// RotationX returns a right-handed rotation about the X axis.
func RotationX(rad float32) Mat4 {
	s, c := math.SinCos32(rad)
	return Mat4{Cols: [4]Vec4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}}
}

// RotationY returns a right-handed rotation about the Y axis.
func RotationY(rad float32) Mat4 {
	s, c := math.SinCos32(rad)
	return Mat4{Cols: [4]Vec4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}}
}

// RotationZ returns a right-handed rotation about the Z axis.
func RotationZ(rad float32) Mat4 {
	s, c := math.SinCos32(rad)
	return Mat4{Cols: [4]Vec4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// RotationAxis returns a rotation of rad radians about axis (xyz used).
// A zero axis yields the identity.
func RotationAxis(axis Vec4, rad float32) Mat4 {
	return QuatFromAxisAngle(axis, rad).ToMat4()
}

// LookAtRH returns a right-handed view matrix looking from eye towards
// center. Only the xyz components of the arguments are used.
func LookAtRH(eye, center, up Vec4) Mat4 {
	f := center.Sub(eye).WithW(0).Normalize3()
	s := f.Cross3(up).Normalize3()
	u := s.Cross3(f)
	return Mat4{Cols: [4]Vec4{
		{s.X, u.X, -f.X, 0},
		{s.Y, u.Y, -f.Y, 0},
		{s.Z, u.Z, -f.Z, 0},
		{-s.Dot3(eye), -u.Dot3(eye), f.Dot3(eye), 1},
	}}
}

// PerspectiveRH returns a right-handed perspective projection mapping depth
// to the [-1, 1] clip range. fovy is the vertical field of view in radians.
func PerspectiveRH(fovy, aspect, near, far float32) Mat4 {
	tanHalf := math.Tan32(fovy / 2)
	var m Mat4
	m.Cols[0].X = 1 / (aspect * tanHalf)
	m.Cols[1].Y = 1 / tanHalf
	m.Cols[2].Z = -(far + near) / (far - near)
	m.Cols[2].W = -1
	m.Cols[3].Z = -(2 * far * near) / (far - near)
	return m
}

// OrthographicRH returns a right-handed orthographic projection mapping
// depth to the [-1, 1] clip range.
func OrthographicRH(left, right, bottom, top, near, far float32) Mat4 {
	m := Identity4()
	m.Cols[0].X = 2 / (right - left)
	m.Cols[1].Y = 2 / (top - bottom)
	m.Cols[2].Z = -2 / (far - near)
	m.Cols[3] = Vec4{
		-(right + left) / (right - left),
		-(top + bottom) / (top - bottom),
		-(far + near) / (far - near),
		1,
	}
	return m
}
