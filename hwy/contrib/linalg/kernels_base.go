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
	"unsafe"

	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

// Scalar kernels. Every backend falls back to these for the operations it
// does not override, and the SIMD kernels are tested against them.

var baseVec4 = vec4Kernels{
	add:        baseVec4Add,
	sub:        baseVec4Sub,
	mul:        baseVec4Mul,
	div:        baseVec4Div,
	min:        baseVec4Min,
	max:        baseVec4Max,
	scale:      baseVec4Scale,
	neg:        baseVec4Neg,
	abs:        baseVec4Abs,
	sqrt:       baseVec4Sqrt,
	rsqrt:      baseVec4Rsqrt,
	reciprocal: baseVec4Reciprocal,
	normalize:  baseVec4Normalize,
	normalize3: baseVec4Normalize3,
	mulAdd:     baseVec4MulAdd,
	lerp:       baseVec4Lerp,
	clamp:      baseVec4Clamp,
	dot:        baseVec4Dot,
	dot3:       baseVec4Dot3,
	cross3:     baseVec4Cross3,
}

var baseMat4 = mat4Kernels{
	add:         baseMat4Add,
	sub:         baseMat4Sub,
	mul:         baseMat4Mul,
	scale:       baseMat4Scale,
	mulVec:      baseMat4MulVec,
	vecMul:      baseMat4VecMul,
	transpose:   baseMat4Transpose,
	determinant: baseMat4Determinant,
	inverse:     baseMat4Inverse,
}

var baseQuat = quatKernels{
	add:       baseQuatAdd,
	sub:       baseQuatSub,
	mul:       baseQuatMul,
	scale:     baseQuatScale,
	neg:       baseQuatNeg,
	conjugate: baseQuatConjugate,
	normalize: baseQuatNormalize,
	inverse:   baseQuatInverse,
	dot:       baseQuatDot,
	rotate:    baseQuatRotate,
	toMat4:    baseQuatToMat4,
}

func baseVec4Add(a, b Vec4) Vec4 { return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func baseVec4Sub(a, b Vec4) Vec4 { return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func baseVec4Mul(a, b Vec4) Vec4 { return Vec4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W} }
func baseVec4Div(a, b Vec4) Vec4 { return Vec4{a.X / b.X, a.Y / b.Y, a.Z / b.Z, a.W / b.W} }

// baseVec4Min and baseVec4Max follow the MINPS/MAXPS operand rule, b wins
// unless the comparison holds, so NaN lanes agree with the SIMD tables.
func baseVec4Min(a, b Vec4) Vec4 {
	return Vec4{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z), math.Min(a.W, b.W)}
}

func baseVec4Max(a, b Vec4) Vec4 {
	return Vec4{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z), math.Max(a.W, b.W)}
}

func baseVec4Clamp(a, lo, hi Vec4) Vec4 {
	return baseVec4Min(baseVec4Max(a, lo), hi)
}

func baseVec4Scale(a Vec4, s float32) Vec4 { return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s} }
func baseVec4Neg(a Vec4) Vec4             { return Vec4{-a.X, -a.Y, -a.Z, -a.W} }

func baseVec4Abs(a Vec4) Vec4 {
	return Vec4{math.Abs(a.X), math.Abs(a.Y), math.Abs(a.Z), math.Abs(a.W)}
}

func baseVec4Sqrt(a Vec4) Vec4 {
	return Vec4{math.Sqrt32(a.X), math.Sqrt32(a.Y), math.Sqrt32(a.Z), math.Sqrt32(a.W)}
}

func baseVec4Rsqrt(a Vec4) Vec4 {
	return Vec4{math.InvSqrt32(a.X), math.InvSqrt32(a.Y), math.InvSqrt32(a.Z), math.InvSqrt32(a.W)}
}

func baseVec4Reciprocal(a Vec4) Vec4 { return Vec4{1 / a.X, 1 / a.Y, 1 / a.Z, 1 / a.W} }

func baseVec4MulAdd(a, b, c Vec4) Vec4 {
	return Vec4{a.X*b.X + c.X, a.Y*b.Y + c.Y, a.Z*b.Z + c.Z, a.W*b.W + c.W}
}

func baseVec4Lerp(a, b Vec4, t float32) Vec4 {
	return Vec4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}

// baseVec4Dot pairs the terms the way the SIMD horizontal sum does.
func baseVec4Dot(a, b Vec4) float32 {
	return (a.X*b.X + a.Y*b.Y) + (a.Z*b.Z + a.W*b.W)
}

func baseVec4Dot3(a, b Vec4) float32 {
	return (a.X*b.X + a.Y*b.Y) + a.Z*b.Z
}

func baseVec4Cross3(a, b Vec4) Vec4 {
	return Vec4{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
		0,
	}
}

func baseVec4Normalize(a Vec4) Vec4 {
	l := math.Sqrt32(baseVec4Dot(a, a))
	if l <= math.Epsilon32 {
		return Vec4{}
	}
	return baseVec4Scale(a, 1/l)
}

func baseVec4Normalize3(a Vec4) Vec4 {
	l := math.Sqrt32(baseVec4Dot3(a, a))
	if l <= math.Epsilon32 {
		return Vec4{W: a.W}
	}
	inv := 1 / l
	return Vec4{a.X * inv, a.Y * inv, a.Z * inv, a.W}
}

func baseMat4Add(a, b *Mat4) Mat4 {
	var r Mat4
	for c := range 4 {
		r.Cols[c] = baseVec4Add(a.Cols[c], b.Cols[c])
	}
	return r
}

func baseMat4Sub(a, b *Mat4) Mat4 {
	var r Mat4
	for c := range 4 {
		r.Cols[c] = baseVec4Sub(a.Cols[c], b.Cols[c])
	}
	return r
}

func baseMat4Scale(a *Mat4, s float32) Mat4 {
	var r Mat4
	for c := range 4 {
		r.Cols[c] = baseVec4Scale(a.Cols[c], s)
	}
	return r
}

// baseMat4MulVec accumulates the columns of m weighted by v, in the same
// order as the SIMD kernels.
func baseMat4MulVec(m *Mat4, v Vec4) Vec4 {
	r := baseVec4Scale(m.Cols[0], v.X)
	r = baseVec4Add(r, baseVec4Scale(m.Cols[1], v.Y))
	r = baseVec4Add(r, baseVec4Scale(m.Cols[2], v.Z))
	return baseVec4Add(r, baseVec4Scale(m.Cols[3], v.W))
}

func baseMat4VecMul(v Vec4, m *Mat4) Vec4 {
	return Vec4{
		baseVec4Dot(v, m.Cols[0]),
		baseVec4Dot(v, m.Cols[1]),
		baseVec4Dot(v, m.Cols[2]),
		baseVec4Dot(v, m.Cols[3]),
	}
}

func baseMat4Mul(a, b *Mat4) Mat4 {
	var r Mat4
	for c := range 4 {
		r.Cols[c] = baseMat4MulVec(a, b.Cols[c])
	}
	return r
}

func baseMat4Transpose(m *Mat4) Mat4 {
	c0, c1, c2, c3 := m.Cols[0], m.Cols[1], m.Cols[2], m.Cols[3]
	return Mat4{Cols: [4]Vec4{
		{c0.X, c1.X, c2.X, c3.X},
		{c0.Y, c1.Y, c2.Y, c3.Y},
		{c0.Z, c1.Z, c2.Z, c3.Z},
		{c0.W, c1.W, c2.W, c3.W},
	}}
}

// Cofactor expansion. The 2x2 sub-determinants are grouped four at a time
// so the scalar code computes exactly what the SIMD kernels compute lane by
// lane. e[c][r] is element (row r, column c).
//
// fac(i, j) holds the 2x2 minors of rows i and j taken from column pairs
// (2,3) (2,3) (1,3) (1,2).

func cofactorFac(e *[4][4]float32, i, j int) Vec4 {
	a := Vec4{e[2][i], e[2][i], e[1][i], e[1][i]}
	b := Vec4{e[3][j], e[3][j], e[3][j], e[2][j]}
	c := Vec4{e[3][i], e[3][i], e[3][i], e[2][i]}
	d := Vec4{e[2][j], e[2][j], e[1][j], e[1][j]}
	return baseVec4Sub(baseVec4Mul(a, b), baseVec4Mul(c, d))
}

func cofactorVec(e *[4][4]float32, r int) Vec4 {
	return Vec4{e[1][r], e[0][r], e[0][r], e[0][r]}
}

var (
	signA = Vec4{1, -1, 1, -1}
	signB = Vec4{-1, 1, -1, 1}
)

// baseMat4Adjugate returns the adjugate (transposed cofactor matrix) of m.
func baseMat4Adjugate(m *Mat4) Mat4 {
	e := (*[4][4]float32)(unsafe.Pointer(m))

	fac0 := cofactorFac(e, 2, 3)
	fac1 := cofactorFac(e, 1, 3)
	fac2 := cofactorFac(e, 1, 2)
	fac3 := cofactorFac(e, 0, 3)
	fac4 := cofactorFac(e, 0, 2)
	fac5 := cofactorFac(e, 0, 1)

	vec0 := cofactorVec(e, 0)
	vec1 := cofactorVec(e, 1)
	vec2 := cofactorVec(e, 2)
	vec3 := cofactorVec(e, 3)

	inv0 := baseVec4Add(baseVec4Sub(baseVec4Mul(vec1, fac0), baseVec4Mul(vec2, fac1)), baseVec4Mul(vec3, fac2))
	inv1 := baseVec4Add(baseVec4Sub(baseVec4Mul(vec0, fac0), baseVec4Mul(vec2, fac3)), baseVec4Mul(vec3, fac4))
	inv2 := baseVec4Add(baseVec4Sub(baseVec4Mul(vec0, fac1), baseVec4Mul(vec1, fac3)), baseVec4Mul(vec3, fac5))
	inv3 := baseVec4Add(baseVec4Sub(baseVec4Mul(vec0, fac2), baseVec4Mul(vec1, fac4)), baseVec4Mul(vec2, fac5))

	return Mat4{Cols: [4]Vec4{
		baseVec4Mul(inv0, signA),
		baseVec4Mul(inv1, signB),
		baseVec4Mul(inv2, signA),
		baseVec4Mul(inv3, signB),
	}}
}

// adjugateDet expands det(m) along the first column using the first row of
// the adjugate.
func adjugateDet(m, adj *Mat4) float32 {
	row0 := Vec4{adj.Cols[0].X, adj.Cols[1].X, adj.Cols[2].X, adj.Cols[3].X}
	return baseVec4Dot(m.Cols[0], row0)
}

func baseMat4Determinant(m *Mat4) float32 {
	adj := baseMat4Adjugate(m)
	return adjugateDet(m, &adj)
}

func baseMat4Inverse(m *Mat4) Mat4 {
	adj := baseMat4Adjugate(m)
	det := adjugateDet(m, &adj)
	if !(math.Abs(det) > math.DetEpsilon) {
		return Mat4{}
	}
	return baseMat4Scale(&adj, 1/det)
}

func baseQuatAdd(a, b Quat) Quat { return Quat(baseVec4Add(Vec4(a), Vec4(b))) }
func baseQuatSub(a, b Quat) Quat { return Quat(baseVec4Sub(Vec4(a), Vec4(b))) }

func baseQuatScale(a Quat, s float32) Quat { return Quat(baseVec4Scale(Vec4(a), s)) }
func baseQuatNeg(a Quat) Quat             { return Quat{-a.X, -a.Y, -a.Z, -a.W} }
func baseQuatConjugate(a Quat) Quat       { return Quat{-a.X, -a.Y, -a.Z, a.W} }
func baseQuatDot(a, b Quat) float32       { return baseVec4Dot(Vec4(a), Vec4(b)) }

// baseQuatMul is the Hamilton product a*b, written as the sum of b's lanes
// permuted and sign-flipped, weighted by each component of a.
func baseQuatMul(a, b Quat) Quat {
	r := baseVec4Scale(Vec4(b), a.W)
	r = baseVec4Add(r, baseVec4Scale(Vec4{b.W, -b.Z, b.Y, -b.X}, a.X))
	r = baseVec4Add(r, baseVec4Scale(Vec4{b.Z, b.W, -b.X, -b.Y}, a.Y))
	r = baseVec4Add(r, baseVec4Scale(Vec4{-b.Y, b.X, b.W, -b.Z}, a.Z))
	return Quat(r)
}

func baseQuatNormalize(a Quat) Quat {
	l := math.Sqrt32(baseQuatDot(a, a))
	if l <= math.Epsilon32 {
		return Quat{}
	}
	return baseQuatScale(a, 1/l)
}

func baseQuatInverse(a Quat) Quat {
	n := baseQuatDot(a, a)
	if n <= math.Epsilon32*math.Epsilon32 {
		return Quat{}
	}
	return baseQuatScale(baseQuatConjugate(a), 1/n)
}

// baseQuatRotate computes v + w*t + u x t with t = 2(u x v), u = q.xyz.
func baseQuatRotate(q Quat, v Vec4) Vec4 {
	u := Vec4{q.X, q.Y, q.Z, 0}
	t := baseVec4Scale(baseVec4Cross3(u, v), 2)
	r := baseVec4Add(v, baseVec4Scale(t, q.W))
	r = baseVec4Add(r, baseVec4Cross3(u, t))
	r.W = v.W
	return r
}

func baseQuatToMat4(q Quat) Mat4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return Mat4{Cols: [4]Vec4{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}}
}
