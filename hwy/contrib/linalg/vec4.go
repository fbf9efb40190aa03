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
	"unsafe"

	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

// Vec4 is a 4-component float32 vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 returns the vector (x, y, z, w).
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Splat4 returns a vector with every component set to s.
func Splat4(s float32) Vec4 {
	return Vec4{s, s, s, s}
}

// Point returns the homogeneous point (x, y, z, 1).
func Point(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 1}
}

// Direction returns the homogeneous direction (x, y, z, 0).
func Direction(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 0}
}

// Vec4FromSlice returns the first four elements of s as a vector.
// It panics if s has fewer than four elements.
func Vec4FromSlice(s []float32) Vec4 {
	if len(s) < 4 {
		panic("linalg: slice is too short for Vec4")
	}
	return Vec4{s[0], s[1], s[2], s[3]}
}

// lanes views v as an array, the layout the SIMD kernels load and store.
func (v *Vec4) lanes() *[4]float32 {
	return (*[4]float32)(unsafe.Pointer(v))
}

// At returns component i (0=X ... 3=W). It panics if i is out of range.
func (v Vec4) At(i int) float32 {
	if uint(i) >= 4 {
		panic(fmt.Sprintf("linalg: Vec4 index %d out of range", i))
	}
	return v.lanes()[i]
}

// Set sets component i. It panics if i is out of range.
func (v *Vec4) Set(i int, x float32) {
	if uint(i) >= 4 {
		panic(fmt.Sprintf("linalg: Vec4 index %d out of range", i))
	}
	v.lanes()[i] = x
}

// Array returns the components as an array.
func (v Vec4) Array() [4]float32 {
	return *v.lanes()
}

// XYZ returns the first three components.
func (v Vec4) XYZ() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// WithW returns v with the W component replaced.
func (v Vec4) WithW(w float32) Vec4 {
	v.W = w
	return v
}

// String formats v as "(x, y, z, w)".
func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

// Add returns v + w.
func (v Vec4) Add(w Vec4) Vec4 { return active.vec.add(v, w) }

// Sub returns v - w.
func (v Vec4) Sub(w Vec4) Vec4 { return active.vec.sub(v, w) }

// Mul returns the component-wise product of v and w.
func (v Vec4) Mul(w Vec4) Vec4 { return active.vec.mul(v, w) }

// Div returns the component-wise quotient v / w. Division by a zero
// component follows IEEE-754.
func (v Vec4) Div(w Vec4) Vec4 { return active.vec.div(v, w) }

// Scale returns v * s.
func (v Vec4) Scale(s float32) Vec4 { return active.vec.scale(v, s) }

// Neg returns -v.
func (v Vec4) Neg() Vec4 { return active.vec.neg(v) }

// Abs returns the component-wise absolute value.
func (v Vec4) Abs() Vec4 { return active.vec.abs(v) }

// Min returns the component-wise minimum.
func (v Vec4) Min(w Vec4) Vec4 { return active.vec.min(v, w) }

// Max returns the component-wise maximum.
func (v Vec4) Max(w Vec4) Vec4 { return active.vec.max(v, w) }

// Clamp limits each component of v to [lo, hi].
func (v Vec4) Clamp(lo, hi Vec4) Vec4 { return active.vec.clamp(v, lo, hi) }

// Lerp returns v + (w-v)*t.
func (v Vec4) Lerp(w Vec4, t float32) Vec4 { return active.vec.lerp(v, w, t) }

// MulAdd returns v*b + c, fused where the backend supports it.
func (v Vec4) MulAdd(b, c Vec4) Vec4 { return active.vec.mulAdd(v, b, c) }

// Dot returns the 4-component dot product.
func (v Vec4) Dot(w Vec4) float32 { return active.vec.dot(v, w) }

// Dot3 returns the dot product of the xyz components.
func (v Vec4) Dot3(w Vec4) float32 { return active.vec.dot3(v, w) }

// Cross3 returns the cross product of the xyz components with W = 0.
func (v Vec4) Cross3(w Vec4) Vec4 { return active.vec.cross3(v, w) }

// LengthSq returns the squared length of v.
func (v Vec4) LengthSq() float32 { return active.vec.dot(v, v) }

// Length returns the length of v.
func (v Vec4) Length() float32 { return math.Sqrt32(active.vec.dot(v, v)) }

// Length3 returns the length of the xyz components.
func (v Vec4) Length3() float32 { return math.Sqrt32(active.vec.dot3(v, v)) }

// Distance returns the length of v - w.
func (v Vec4) Distance(w Vec4) float32 { return v.Sub(w).Length() }

// Normalize returns v scaled to unit length, or the zero vector when the
// length of v is at most math.Epsilon32.
func (v Vec4) Normalize() Vec4 { return active.vec.normalize(v) }

// Normalize3 normalizes the xyz components and keeps W. The xyz part is
// zeroed when its length is at most math.Epsilon32.
func (v Vec4) Normalize3() Vec4 { return active.vec.normalize3(v) }

// Sqrt returns the component-wise square root.
func (v Vec4) Sqrt() Vec4 { return active.vec.sqrt(v) }

// Rsqrt returns the component-wise reciprocal square root. SIMD backends
// return a Newton-Raphson refined estimate (about 22 bits). Rsqrt of a
// zero component is +Inf on every backend.
func (v Vec4) Rsqrt() Vec4 { return active.vec.rsqrt(v) }

// Reciprocal returns the component-wise 1/v.
func (v Vec4) Reciprocal() Vec4 { return active.vec.reciprocal(v) }

// Equal reports whether every component of v equals the one in w.
func (v Vec4) Equal(w Vec4) bool { return v == w }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4) ApproxEqual(w Vec4, eps float32) bool {
	return math.ApproxEqual(v.X, w.X, eps) &&
		math.ApproxEqual(v.Y, w.Y, eps) &&
		math.ApproxEqual(v.Z, w.Z, eps) &&
		math.ApproxEqual(v.W, w.W, eps)
}

// SumComponents returns x + y + z + w.
func (v Vec4) SumComponents() float32 {
	return (v.X + v.Y) + (v.Z + v.W)
}

// MinComponent returns the smallest component.
func (v Vec4) MinComponent() float32 {
	return min(v.X, v.Y, v.Z, v.W)
}

// MaxComponent returns the largest component.
func (v Vec4) MaxComponent() float32 {
	return max(v.X, v.Y, v.Z, v.W)
}
