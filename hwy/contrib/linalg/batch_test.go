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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwymath/hwy/contrib/workerpool"
)

// withThreshold lowers ParallelThreshold for the duration of the test.
func withThreshold(t *testing.T, n int) {
	t.Helper()
	old := ParallelThreshold
	ParallelThreshold = n
	t.Cleanup(func() { ParallelThreshold = old })
}

func randVecs(n int) []Vec4 {
	r := newRand()
	vs := make([]Vec4, n)
	for i := range vs {
		vs[i] = randVec4(r)
	}
	return vs
}

func TestTransformBatch(t *testing.T) {
	m := Translation(1, 2, 3).Mul(RotationZ(0.5))
	for _, threshold := range []int{1 << 30, 8} {
		withThreshold(t, threshold)
		forEachBackend(t, func(t *testing.T) {
			src := randVecs(1000)
			dst := make([]Vec4, len(src))
			TransformBatch(m, dst, src)
			for i := range src {
				require.Equal(t, m.MulVec(src[i]), dst[i], "index %d", i)
			}

			TransformBatch(m, src, src)
			assert.Equal(t, dst, src, "in place")
		})
	}
}

func TestNormalizeBatch(t *testing.T) {
	withThreshold(t, 16)
	forEachBackend(t, func(t *testing.T) {
		src := randVecs(777)
		src[3] = Vec4{}
		dst := make([]Vec4, len(src)+5)
		NormalizeBatch(dst, src)
		for i := range src {
			require.Equal(t, src[i].Normalize(), dst[i], "index %d", i)
		}
		assert.Equal(t, Vec4{}, dst[3])
		assert.Equal(t, Vec4{}, dst[len(src)], "tail untouched")
	})
}

func TestRotateBatch(t *testing.T) {
	withThreshold(t, 16)
	q := QuatFromAxisAngle(V4(1, 2, 3, 0), 0.8)
	forEachBackend(t, func(t *testing.T) {
		src := randVecs(300)
		dst := make([]Vec4, len(src))
		RotateBatch(q, dst, src)
		for i := range src {
			require.Equal(t, q.Rotate(src[i]), dst[i], "index %d", i)
		}
	})
}

func TestDotBatch(t *testing.T) {
	withThreshold(t, 16)
	a, b := randVecs(100), randVecs(200)[100:]
	dst := make([]float32, len(a))
	DotBatch(dst, a, b)
	for i := range a {
		assert.Equal(t, a[i].Dot(b[i]), dst[i])
	}
	assert.Panics(t, func() { DotBatch(dst, a, b[:50]) })
	assert.PanicsWithValue(t, "linalg: dst is too short", func() { DotBatch(dst[:10], a, b) })
}

func TestBatchShortDst(t *testing.T) {
	src := randVecs(10)
	dst := make([]Vec4, 9)
	for name, fn := range map[string]func(){
		"transform": func() { TransformBatch(Identity4(), dst, src) },
		"normalize": func() { NormalizeBatch(dst, src) },
		"rotate":    func() { RotateBatch(IdentityQuat(), dst, src) },
	} {
		assert.PanicsWithValue(t, "linalg: dst is too short", fn, name)
	}

	// Empty input is a no-op even with a nil dst.
	assert.NotPanics(t, func() { TransformBatch(Identity4(), nil, nil) })
}

func TestSetPool(t *testing.T) {
	withThreshold(t, 4)
	old := sharedPool()
	t.Cleanup(func() { SetPool(old) })

	p := workerpool.New(3)
	defer p.Close()
	SetPool(p)
	assert.Same(t, p, sharedPool())

	src := randVecs(64)
	dst := make([]Vec4, len(src))
	TransformBatch(Scaling(2, 2, 2), dst, src)
	for i := range src {
		assert.Equal(t, Scaling(2, 2, 2).MulVec(src[i]), dst[i])
	}

	SetPool(nil)
	assert.Nil(t, sharedPool())
	clear(dst)
	NormalizeBatch(dst, src)
	assert.Equal(t, src[0].Normalize(), dst[0], "nil pool runs inline")

	// A closed pool falls back to the calling goroutine.
	p.Close()
	SetPool(p)
	RotateBatch(IdentityQuat(), dst, src)
	assert.Equal(t, src, dst)
}

func BenchmarkTransformBatch(b *testing.B) {
	m := Translation(1, 2, 3).Mul(RotationY(0.3))
	src := randVecs(1 << 16)
	dst := make([]Vec4, len(src))
	for b.Loop() {
		TransformBatch(m, dst, src)
	}
}
