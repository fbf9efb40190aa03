//go:build amd64 && goexperiment.simd

package linalg

import (
	stdmath "math"
	"simd/archsimd"
	"unsafe"

	"github.com/ajroetker/hwymath/hwy"
	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

// 128-bit kernels built on archsimd Float32x4. Lane permutations go
// through a [4]float32 gather followed by a load.
//
// archsimd emits VEX encoded instructions and broadcasts from registers,
// so the backend needs AVX2 even though the vectors are SSE sized.

var sseBackend = register(&Backend{
	Name:     "sse",
	Level:    hwy.DispatchSSE2,
	Priority: 10,
	Requires: "archsimd avx2",
	supported: func(c hwy.Caps) bool {
		return c.HaveArchSIMD && c.HaveAVX2
	},
	vec:  sseVec4,
	mat:  sseMat4,
	quat: sseQuat,
})

var sseVec4 = vec4Kernels{
	add:        sseVec4Add,
	sub:        sseVec4Sub,
	mul:        sseVec4Mul,
	div:        sseVec4Div,
	min:        sseVec4Min,
	max:        sseVec4Max,
	scale:      sseVec4Scale,
	neg:        sseVec4Neg,
	abs:        sseVec4Abs,
	sqrt:       sseVec4Sqrt,
	rsqrt:      sseVec4Rsqrt,
	reciprocal: sseVec4Reciprocal,
	normalize:  sseVec4Normalize,
	normalize3: sseVec4Normalize3,
	mulAdd:     sseVec4MulAdd,
	lerp:       sseVec4Lerp,
	clamp:      sseVec4Clamp,
	dot:        sseVec4Dot,
	dot3:       sseVec4Dot3,
	cross3:     sseVec4Cross3,
}

var sseMat4 = mat4Kernels{
	add:         sseMat4Add,
	sub:         sseMat4Sub,
	mul:         sseMat4Mul,
	scale:       sseMat4Scale,
	mulVec:      sseMat4MulVec,
	vecMul:      sseMat4VecMul,
	transpose:   baseMat4Transpose,
	determinant: sseMat4Determinant,
	inverse:     sseMat4Inverse,
}

var sseQuat = quatKernels{
	add:       sseQuatAdd,
	sub:       sseQuatSub,
	mul:       sseQuatMul,
	scale:     sseQuatScale,
	neg:       sseQuatNeg,
	conjugate: sseQuatConjugate,
	normalize: sseQuatNormalize,
	inverse:   sseQuatInverse,
	dot:       sseQuatDot,
	rotate:    sseQuatRotate,
	toMat4:    baseQuatToMat4,
}

func load4(v Vec4) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(v.lanes()[:])
}

func gather4(x, y, z, w float32) archsimd.Float32x4 {
	a := [4]float32{x, y, z, w}
	return archsimd.LoadFloat32x4Slice(a[:])
}

func store4(x archsimd.Float32x4) Vec4 {
	var r Vec4
	x.StoreSlice(r.lanes()[:])
	return r
}

// Rsqrt_SSE_F32x4 computes 1/sqrt(x) from the hardware estimate refined by
// one math.NewtonRaphsonRsqrt32 step, y' = y * (1.5 - 0.5*x*y*y).
//
// The estimate flushes subnormal inputs to zero, so lanes below the smallest
// normal float32 are scaled by 2^24 first and the result by 2^12.
// Lanes where x is 0 or +Inf keep the raw estimate (+Inf and 0), which the
// refinement would turn into NaN. Negative and NaN lanes are NaN.
func Rsqrt_SSE_F32x4(x archsimd.Float32x4) archsimd.Float32x4 {
	tiny := x.Less(archsimd.BroadcastFloat32x4(rsqrtMinNormal))
	xs := select4(x.Mul(archsimd.BroadcastFloat32x4(rsqrtTinyScale)), x, tiny)
	est := xs.ReciprocalSqrt()
	halfX := xs.Mul(archsimd.BroadcastFloat32x4(0.5))
	refined := est.Mul(archsimd.BroadcastFloat32x4(1.5).Sub(halfX.Mul(est).Mul(est)))
	refined = refined.Mul(select4(
		archsimd.BroadcastFloat32x4(rsqrtTinyUnscale), archsimd.BroadcastFloat32x4(1), tiny))
	special := x.Equal(archsimd.BroadcastFloat32x4(0)).
		Or(x.Equal(archsimd.BroadcastFloat32x4(float32(stdmath.Inf(1)))))
	return select4(est, refined, special)
}

const (
	rsqrtMinNormal   = 0x1p-126
	rsqrtTinyScale   = 0x1p24
	rsqrtTinyUnscale = 0x1p12
)

// select4 returns a where mask is set and b elsewhere.
func select4(a, b archsimd.Float32x4, mask archsimd.Mask32x4) archsimd.Float32x4 {
	return a.AsInt32x4().Merge(b.AsInt32x4(), mask).AsFloat32x4()
}

// Dot_SSE_F32x4 returns the horizontal sum of a*b as (x+y) + (z+w).
func Dot_SSE_F32x4(a, b archsimd.Float32x4) float32 {
	var p [4]float32
	a.Mul(b).StoreSlice(p[:])
	return (p[0] + p[1]) + (p[2] + p[3])
}

// Dot3_SSE_F32x4 returns the sum of the first three lanes of a*b.
func Dot3_SSE_F32x4(a, b archsimd.Float32x4) float32 {
	var p [4]float32
	a.Mul(b).StoreSlice(p[:])
	return (p[0] + p[1]) + p[2]
}

// Cross3_SSE_F32x4 computes a.yzx*b.zxy - a.zxy*b.yzx with lane 3 zero.
func Cross3_SSE_F32x4(a, b Vec4) archsimd.Float32x4 {
	l := gather4(a.Y, a.Z, a.X, 0).Mul(gather4(b.Z, b.X, b.Y, 0))
	r := gather4(a.Z, a.X, a.Y, 0).Mul(gather4(b.Y, b.Z, b.X, 0))
	return l.Sub(r)
}

func sseVec4Add(a, b Vec4) Vec4 { return store4(load4(a).Add(load4(b))) }
func sseVec4Sub(a, b Vec4) Vec4 { return store4(load4(a).Sub(load4(b))) }
func sseVec4Mul(a, b Vec4) Vec4 { return store4(load4(a).Mul(load4(b))) }
func sseVec4Div(a, b Vec4) Vec4 { return store4(load4(a).Div(load4(b))) }
func sseVec4Min(a, b Vec4) Vec4 { return store4(load4(a).Min(load4(b))) }
func sseVec4Max(a, b Vec4) Vec4 { return store4(load4(a).Max(load4(b))) }

func sseVec4Clamp(a, lo, hi Vec4) Vec4 {
	return store4(load4(a).Max(load4(lo)).Min(load4(hi)))
}

func sseVec4Scale(a Vec4, s float32) Vec4 {
	return store4(load4(a).Mul(archsimd.BroadcastFloat32x4(s)))
}

func sseVec4Neg(a Vec4) Vec4 {
	sign := archsimd.BroadcastInt32x4(-1 << 31)
	return store4(load4(a).AsInt32x4().Xor(sign).AsFloat32x4())
}

func sseVec4Abs(a Vec4) Vec4 {
	mask := archsimd.BroadcastInt32x4(0x7fffffff)
	return store4(load4(a).AsInt32x4().And(mask).AsFloat32x4())
}

func sseVec4Sqrt(a Vec4) Vec4  { return store4(load4(a).Sqrt()) }
func sseVec4Rsqrt(a Vec4) Vec4 { return store4(Rsqrt_SSE_F32x4(load4(a))) }

func sseVec4Reciprocal(a Vec4) Vec4 {
	return store4(archsimd.BroadcastFloat32x4(1).Div(load4(a)))
}

func sseVec4MulAdd(a, b, c Vec4) Vec4 {
	return store4(load4(a).Mul(load4(b)).Add(load4(c)))
}

func sseVec4Lerp(a, b Vec4, t float32) Vec4 {
	va := load4(a)
	return store4(va.Add(load4(b).Sub(va).Mul(archsimd.BroadcastFloat32x4(t))))
}

func sseVec4Dot(a, b Vec4) float32  { return Dot_SSE_F32x4(load4(a), load4(b)) }
func sseVec4Dot3(a, b Vec4) float32 { return Dot3_SSE_F32x4(load4(a), load4(b)) }
func sseVec4Cross3(a, b Vec4) Vec4  { return store4(Cross3_SSE_F32x4(a, b)) }

// sseNormalize scales x by rsqrt(lengthSq), or returns zero when the length
// is at most math.Epsilon32. keepW leaves lane 3 untouched.
func sseNormalize(x archsimd.Float32x4, lengthSq float32, w float32, keepW bool) archsimd.Float32x4 {
	if math.Sqrt32(lengthSq) <= math.Epsilon32 {
		if keepW {
			return gather4(0, 0, 0, w)
		}
		return archsimd.BroadcastFloat32x4(0)
	}
	inv := Rsqrt_SSE_F32x4(archsimd.BroadcastFloat32x4(lengthSq))
	if keepW {
		var l [4]float32
		inv.StoreSlice(l[:])
		inv = gather4(l[0], l[0], l[0], 1)
	}
	return x.Mul(inv)
}

func sseVec4Normalize(a Vec4) Vec4 {
	x := load4(a)
	return store4(sseNormalize(x, Dot_SSE_F32x4(x, x), a.W, false))
}

func sseVec4Normalize3(a Vec4) Vec4 {
	x := load4(a)
	return store4(sseNormalize(x, Dot3_SSE_F32x4(x, x), a.W, true))
}

func sseMat4Add(a, b *Mat4) Mat4 {
	var r Mat4
	for c := range 4 {
		r.Cols[c] = store4(load4(a.Cols[c]).Add(load4(b.Cols[c])))
	}
	return r
}

func sseMat4Sub(a, b *Mat4) Mat4 {
	var r Mat4
	for c := range 4 {
		r.Cols[c] = store4(load4(a.Cols[c]).Sub(load4(b.Cols[c])))
	}
	return r
}

func sseMat4Scale(a *Mat4, s float32) Mat4 {
	vs := archsimd.BroadcastFloat32x4(s)
	var r Mat4
	for c := range 4 {
		r.Cols[c] = store4(load4(a.Cols[c]).Mul(vs))
	}
	return r
}

// MulVec_SSE_F32x4 returns c0*v.X + c1*v.Y + c2*v.Z + c3*v.W, accumulated
// left to right.
func MulVec_SSE_F32x4(c0, c1, c2, c3 archsimd.Float32x4, v Vec4) archsimd.Float32x4 {
	r := c0.Mul(archsimd.BroadcastFloat32x4(v.X))
	r = r.Add(c1.Mul(archsimd.BroadcastFloat32x4(v.Y)))
	r = r.Add(c2.Mul(archsimd.BroadcastFloat32x4(v.Z)))
	return r.Add(c3.Mul(archsimd.BroadcastFloat32x4(v.W)))
}

func sseMat4MulVec(m *Mat4, v Vec4) Vec4 {
	return store4(MulVec_SSE_F32x4(load4(m.Cols[0]), load4(m.Cols[1]), load4(m.Cols[2]), load4(m.Cols[3]), v))
}

func sseMat4VecMul(v Vec4, m *Mat4) Vec4 {
	x := load4(v)
	return Vec4{
		Dot_SSE_F32x4(x, load4(m.Cols[0])),
		Dot_SSE_F32x4(x, load4(m.Cols[1])),
		Dot_SSE_F32x4(x, load4(m.Cols[2])),
		Dot_SSE_F32x4(x, load4(m.Cols[3])),
	}
}

func sseMat4Mul(a, b *Mat4) Mat4 {
	c0, c1, c2, c3 := load4(a.Cols[0]), load4(a.Cols[1]), load4(a.Cols[2]), load4(a.Cols[3])
	var r Mat4
	for c := range 4 {
		r.Cols[c] = store4(MulVec_SSE_F32x4(c0, c1, c2, c3, b.Cols[c]))
	}
	return r
}

// sseFac computes four 2x2 minors of rows i and j at once, matching
// cofactorFac lane for lane.
func sseFac(e *[4][4]float32, i, j int) archsimd.Float32x4 {
	a := gather4(e[2][i], e[2][i], e[1][i], e[1][i])
	b := gather4(e[3][j], e[3][j], e[3][j], e[2][j])
	c := gather4(e[3][i], e[3][i], e[3][i], e[2][i])
	d := gather4(e[2][j], e[2][j], e[1][j], e[1][j])
	return a.Mul(b).Sub(c.Mul(d))
}

// Adjugate_SSE_F32x4 returns the columns of the adjugate of m.
func Adjugate_SSE_F32x4(m *Mat4) [4]archsimd.Float32x4 {
	e := (*[4][4]float32)(unsafe.Pointer(m))

	fac0 := sseFac(e, 2, 3)
	fac1 := sseFac(e, 1, 3)
	fac2 := sseFac(e, 1, 2)
	fac3 := sseFac(e, 0, 3)
	fac4 := sseFac(e, 0, 2)
	fac5 := sseFac(e, 0, 1)

	vec0 := gather4(e[1][0], e[0][0], e[0][0], e[0][0])
	vec1 := gather4(e[1][1], e[0][1], e[0][1], e[0][1])
	vec2 := gather4(e[1][2], e[0][2], e[0][2], e[0][2])
	vec3 := gather4(e[1][3], e[0][3], e[0][3], e[0][3])

	inv0 := vec1.Mul(fac0).Sub(vec2.Mul(fac1)).Add(vec3.Mul(fac2))
	inv1 := vec0.Mul(fac0).Sub(vec2.Mul(fac3)).Add(vec3.Mul(fac4))
	inv2 := vec0.Mul(fac1).Sub(vec1.Mul(fac3)).Add(vec3.Mul(fac5))
	inv3 := vec0.Mul(fac2).Sub(vec1.Mul(fac4)).Add(vec2.Mul(fac5))

	sa := load4(signA)
	sb := load4(signB)
	return [4]archsimd.Float32x4{inv0.Mul(sa), inv1.Mul(sb), inv2.Mul(sa), inv3.Mul(sb)}
}

func sseAdjugateDet(m *Mat4, adj *[4]archsimd.Float32x4) float32 {
	var row0 [4]float32
	for c := range 4 {
		var col [4]float32
		adj[c].StoreSlice(col[:])
		row0[c] = col[0]
	}
	return Dot_SSE_F32x4(load4(m.Cols[0]), archsimd.LoadFloat32x4Slice(row0[:]))
}

func sseMat4Determinant(m *Mat4) float32 {
	adj := Adjugate_SSE_F32x4(m)
	return sseAdjugateDet(m, &adj)
}

func sseMat4Inverse(m *Mat4) Mat4 {
	adj := Adjugate_SSE_F32x4(m)
	det := sseAdjugateDet(m, &adj)
	if !(math.Abs(det) > math.DetEpsilon) {
		return Mat4{}
	}
	s := archsimd.BroadcastFloat32x4(1 / det)
	var r Mat4
	for c := range 4 {
		r.Cols[c] = store4(adj[c].Mul(s))
	}
	return r
}

func sseQuatAdd(a, b Quat) Quat          { return Quat(sseVec4Add(Vec4(a), Vec4(b))) }
func sseQuatSub(a, b Quat) Quat          { return Quat(sseVec4Sub(Vec4(a), Vec4(b))) }
func sseQuatScale(a Quat, s float32) Quat { return Quat(sseVec4Scale(Vec4(a), s)) }
func sseQuatNeg(a Quat) Quat             { return Quat(sseVec4Neg(Vec4(a))) }
func sseQuatDot(a, b Quat) float32       { return sseVec4Dot(Vec4(a), Vec4(b)) }

func sseQuatConjugate(a Quat) Quat {
	return Quat(store4(load4(Vec4(a)).Mul(gather4(-1, -1, -1, 1))))
}

// QuatMul_SSE_F32x4 computes the Hamilton product a*b as four broadcast
// multiplies of b's lanes permuted and sign-flipped.
func QuatMul_SSE_F32x4(a, b Quat) archsimd.Float32x4 {
	r := load4(Vec4(b)).Mul(archsimd.BroadcastFloat32x4(a.W))
	r = r.Add(gather4(b.W, -b.Z, b.Y, -b.X).Mul(archsimd.BroadcastFloat32x4(a.X)))
	r = r.Add(gather4(b.Z, b.W, -b.X, -b.Y).Mul(archsimd.BroadcastFloat32x4(a.Y)))
	return r.Add(gather4(-b.Y, b.X, b.W, -b.Z).Mul(archsimd.BroadcastFloat32x4(a.Z)))
}

func sseQuatMul(a, b Quat) Quat { return Quat(store4(QuatMul_SSE_F32x4(a, b))) }

func sseQuatNormalize(a Quat) Quat {
	x := load4(Vec4(a))
	return Quat(store4(sseNormalize(x, Dot_SSE_F32x4(x, x), 0, false)))
}

func sseQuatInverse(a Quat) Quat {
	n := sseQuatDot(a, a)
	if n <= math.Epsilon32*math.Epsilon32 {
		return Quat{}
	}
	conj := load4(Vec4(a)).Mul(gather4(-1, -1, -1, 1))
	return Quat(store4(conj.Mul(archsimd.BroadcastFloat32x4(1 / n))))
}

func sseQuatRotate(q Quat, v Vec4) Vec4 {
	u := Vec4{q.X, q.Y, q.Z, 0}
	t := store4(Cross3_SSE_F32x4(u, v).Mul(archsimd.BroadcastFloat32x4(2)))
	r := load4(v).Add(load4(t).Mul(archsimd.BroadcastFloat32x4(q.W)))
	r = r.Add(Cross3_SSE_F32x4(u, t))
	out := store4(r)
	out.W = v.W
	return out
}
