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

	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

// slerpMinAngle is the angle below which Slerp falls back to Nlerp.
const slerpMinAngle = 1e-3

// Quat is a quaternion x*i + y*j + z*k + w. Unit quaternions represent
// rotations; IdentityQuat is the rotation that does nothing.
type Quat struct {
	X, Y, Z, W float32
}

// IdentityQuat returns the identity rotation (0, 0, 0, 1).
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the rotation of rad radians about axis. Only
// the xyz components of axis are used and they need not be normalized.
// A zero axis yields the identity.
func QuatFromAxisAngle(axis Vec4, rad float32) Quat {
	a := axis.WithW(0).Normalize3()
	if a == (Vec4{}) {
		return IdentityQuat()
	}
	s, c := math.SinCos32(rad / 2)
	return Quat{a.X * s, a.Y * s, a.Z * s, c}
}

// QuatFromEuler returns the rotation Rz(roll) * Ry(yaw) * Rx(pitch):
// pitch about X is applied first, then yaw about Y, then roll about Z.
func QuatFromEuler(pitch, yaw, roll float32) Quat {
	sx, cx := math.SinCos32(pitch / 2)
	sy, cy := math.SinCos32(yaw / 2)
	sz, cz := math.SinCos32(roll / 2)
	return Quat{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

// QuatFromMat4 extracts the rotation from the upper 3x3 part of m, which
// must be orthonormal. The branch is chosen on the largest diagonal term
// to keep the square root well away from zero.
func QuatFromMat4(m Mat4) Quat {
	m00, m11, m22 := m.Cols[0].X, m.Cols[1].Y, m.Cols[2].Z
	m01, m02 := m.Cols[1].X, m.Cols[2].X
	m10, m12 := m.Cols[0].Y, m.Cols[2].Y
	m20, m21 := m.Cols[0].Z, m.Cols[1].Z

	var q Quat
	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := math.Sqrt32(trace+1) * 2
		q = Quat{(m21 - m12) / s, (m02 - m20) / s, (m10 - m01) / s, s / 4}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt32(1+m00-m11-m22) * 2
		q = Quat{s / 4, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := math.Sqrt32(1+m11-m00-m22) * 2
		q = Quat{(m01 + m10) / s, s / 4, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := math.Sqrt32(1+m22-m00-m11) * 2
		q = Quat{(m02 + m20) / s, (m12 + m21) / s, s / 4, (m10 - m01) / s}
	}
	return q
}

// QuatBetween returns the shortest rotation taking the direction of from
// to the direction of to (xyz components). Opposite directions rotate by
// pi about an arbitrary perpendicular axis. A zero input yields the identity.
func QuatBetween(from, to Vec4) Quat {
	f := from.WithW(0).Normalize3()
	t := to.WithW(0).Normalize3()
	if f == (Vec4{}) || t == (Vec4{}) {
		return IdentityQuat()
	}
	d := f.Dot3(t)
	switch {
	case d >= 1-math.Epsilon32:
		return IdentityQuat()
	case d <= -1+math.Epsilon32:
		axis := Direction(1, 0, 0).Cross3(f)
		if axis.Length3() <= math.Epsilon32 {
			axis = Direction(0, 1, 0).Cross3(f)
		}
		return QuatFromAxisAngle(axis, math.Pi32)
	}
	c := f.Cross3(t)
	s := math.Sqrt32((1 + d) * 2)
	inv := 1 / s
	return Quat{c.X * inv, c.Y * inv, c.Z * inv, s / 2}
}

// Vec4 returns q's components as a vector.
func (q Quat) Vec4() Vec4 { return Vec4(q) }

// String formats q as "(x, y, z, w)".
func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// Add returns q + r.
func (q Quat) Add(r Quat) Quat { return active.quat.add(q, r) }

// Sub returns q - r.
func (q Quat) Sub(r Quat) Quat { return active.quat.sub(q, r) }

// Scale returns q * s.
func (q Quat) Scale(s float32) Quat { return active.quat.scale(q, s) }

// Neg returns -q, which represents the same rotation as q.
func (q Quat) Neg() Quat { return active.quat.neg(q) }

// Mul returns the Hamilton product q*r: the rotation r followed by q.
func (q Quat) Mul(r Quat) Quat { return active.quat.mul(q, r) }

// Dot returns the 4-component dot product.
func (q Quat) Dot(r Quat) float32 { return active.quat.dot(q, r) }

// LengthSq returns the squared norm.
func (q Quat) LengthSq() float32 { return active.quat.dot(q, q) }

// Length returns the norm.
func (q Quat) Length() float32 { return math.Sqrt32(active.quat.dot(q, q)) }

// Normalize returns q scaled to unit length, or the zero quaternion when
// the length is at most math.Epsilon32.
func (q Quat) Normalize() Quat { return active.quat.normalize(q) }

// Conjugate returns (-x, -y, -z, w).
func (q Quat) Conjugate() Quat { return active.quat.conjugate(q) }

// Inverse returns the multiplicative inverse, or the zero quaternion when
// LengthSq is at most math.Epsilon32 squared.
func (q Quat) Inverse() Quat { return active.quat.inverse(q) }

// Rotate rotates the xyz part of v by q, which must be a unit quaternion.
// The W component of v is returned unchanged.
func (q Quat) Rotate(v Vec4) Vec4 { return active.quat.rotate(q, v) }

// ToMat4 returns the rotation matrix of the unit quaternion q.
func (q Quat) ToMat4() Mat4 { return active.quat.toMat4(q) }

// Lerp interpolates component-wise without normalizing.
func (q Quat) Lerp(r Quat, t float32) Quat {
	return Quat(active.vec.lerp(Vec4(q), Vec4(r), t))
}

// Nlerp interpolates along the shorter path and normalizes the result.
func (q Quat) Nlerp(r Quat, t float32) Quat {
	if q.Dot(r) < 0 {
		r = r.Neg()
	}
	return q.Lerp(r, t).Normalize()
}

// Slerp interpolates with constant angular velocity along the shorter arc.
// Nearly identical rotations use Nlerp, where the slerp weights lose
// precision.
func (q Quat) Slerp(r Quat, t float32) Quat {
	d := q.Dot(r)
	if d < 0 {
		r = r.Neg()
		d = -d
	}
	angle := math.Acos32(d)
	if angle < slerpMinAngle {
		return q.Lerp(r, t).Normalize()
	}
	inv := 1 / math.Sin32(angle)
	wq := math.Sin32((1-t)*angle) * inv
	wr := math.Sin32(t*angle) * inv
	return Quat(active.vec.mulAdd(Vec4(q), Splat4(wq), Vec4(r).Scale(wr)))
}

// Angle returns the rotation angle of the unit quaternion q in [0, 2*pi].
func (q Quat) Angle() float32 {
	return 2 * math.Acos32(q.W)
}

// AxisAngle returns the rotation axis (W = 0) and angle of the unit
// quaternion q. The identity returns the X axis and angle 0.
func (q Quat) AxisAngle() (axis Vec4, angle float32) {
	angle = q.Angle()
	s := math.Sqrt32(1 - q.W*q.W)
	if !(s > math.Epsilon32) {
		return Direction(1, 0, 0), angle
	}
	inv := 1 / s
	return Direction(q.X*inv, q.Y*inv, q.Z*inv), angle
}

// ApproxEqual reports whether every component differs by at most eps.
func (q Quat) ApproxEqual(r Quat, eps float32) bool {
	return Vec4(q).ApproxEqual(Vec4(r), eps)
}

// SameRotation reports whether q and r represent the same rotation within
// eps, treating q and -q as equal.
func (q Quat) SameRotation(r Quat, eps float32) bool {
	return q.ApproxEqual(r, eps) || q.ApproxEqual(r.Neg(), eps)
}
