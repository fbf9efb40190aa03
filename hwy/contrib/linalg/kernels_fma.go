//go:build amd64 && goexperiment.simd

package linalg

import (
	"simd/archsimd"

	"github.com/ajroetker/hwymath/hwy"
)

// The fma backend is the sse backend with every multiply-then-add chain
// replaced by fused multiply-adds.

var fmaBackend = register(&Backend{
	Name:     "fma",
	Level:    hwy.DispatchAVX2,
	Priority: 20,
	Requires: "archsimd avx2 fma",
	supported: func(c hwy.Caps) bool {
		return c.HaveArchSIMD && c.HaveAVX2 && c.HaveFMA
	},
	vec:  fmaVec4,
	mat:  fmaMat4,
	quat: fmaQuat,
})

var fmaVec4 = func() vec4Kernels {
	k := sseVec4
	k.mulAdd = fmaVec4MulAdd
	k.lerp = fmaVec4Lerp
	return k
}()

var fmaMat4 = func() mat4Kernels {
	k := sseMat4
	k.mul = fmaMat4Mul
	k.mulVec = fmaMat4MulVec
	return k
}()

var fmaQuat = func() quatKernels {
	k := sseQuat
	k.mul = fmaQuatMul
	k.rotate = fmaQuatRotate
	return k
}()

func fmaVec4MulAdd(a, b, c Vec4) Vec4 {
	return store4(load4(a).MulAdd(load4(b), load4(c)))
}

// fmaVec4Lerp computes (b-a)*t + a in one rounding step.
func fmaVec4Lerp(a, b Vec4, t float32) Vec4 {
	va := load4(a)
	return store4(load4(b).Sub(va).MulAdd(archsimd.BroadcastFloat32x4(t), va))
}

// MulVec_FMA_F32x4 returns c0*v.X + c1*v.Y + c2*v.Z + c3*v.W with fused
// accumulation.
func MulVec_FMA_F32x4(c0, c1, c2, c3 archsimd.Float32x4, v Vec4) archsimd.Float32x4 {
	r := c0.Mul(archsimd.BroadcastFloat32x4(v.X))
	r = c1.MulAdd(archsimd.BroadcastFloat32x4(v.Y), r)
	r = c2.MulAdd(archsimd.BroadcastFloat32x4(v.Z), r)
	return c3.MulAdd(archsimd.BroadcastFloat32x4(v.W), r)
}

func fmaMat4MulVec(m *Mat4, v Vec4) Vec4 {
	return store4(MulVec_FMA_F32x4(load4(m.Cols[0]), load4(m.Cols[1]), load4(m.Cols[2]), load4(m.Cols[3]), v))
}

func fmaMat4Mul(a, b *Mat4) Mat4 {
	c0, c1, c2, c3 := load4(a.Cols[0]), load4(a.Cols[1]), load4(a.Cols[2]), load4(a.Cols[3])
	var r Mat4
	for c := range 4 {
		r.Cols[c] = store4(MulVec_FMA_F32x4(c0, c1, c2, c3, b.Cols[c]))
	}
	return r
}

// QuatMul_FMA_F32x4 is QuatMul_SSE_F32x4 with fused accumulation.
func QuatMul_FMA_F32x4(a, b Quat) archsimd.Float32x4 {
	r := load4(Vec4(b)).Mul(archsimd.BroadcastFloat32x4(a.W))
	r = gather4(b.W, -b.Z, b.Y, -b.X).MulAdd(archsimd.BroadcastFloat32x4(a.X), r)
	r = gather4(b.Z, b.W, -b.X, -b.Y).MulAdd(archsimd.BroadcastFloat32x4(a.Y), r)
	return gather4(-b.Y, b.X, b.W, -b.Z).MulAdd(archsimd.BroadcastFloat32x4(a.Z), r)
}

func fmaQuatMul(a, b Quat) Quat { return Quat(store4(QuatMul_FMA_F32x4(a, b))) }

func fmaQuatRotate(q Quat, v Vec4) Vec4 {
	u := Vec4{q.X, q.Y, q.Z, 0}
	t := store4(Cross3_SSE_F32x4(u, v).Mul(archsimd.BroadcastFloat32x4(2)))
	r := load4(t).MulAdd(archsimd.BroadcastFloat32x4(q.W), load4(v))
	r = r.Add(Cross3_SSE_F32x4(u, t))
	out := store4(r)
	out.W = v.W
	return out
}
