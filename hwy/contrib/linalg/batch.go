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
	"sync"

	"github.com/ajroetker/hwymath/hwy/contrib/workerpool"
)

// ParallelThreshold is the batch length from which the batch functions
// split work across the shared worker pool. Shorter batches run on the
// calling goroutine.
var ParallelThreshold = 4096

// normalizeChunk is the number of vectors NormalizeBatch claims per grab.
const normalizeChunk = 256

var (
	poolMu  sync.Mutex
	pool    *workerpool.Pool
	poolSet bool
)

// SetPool replaces the pool used by the batch functions. A nil pool makes
// every batch run sequentially. The previous pool is not closed.
func SetPool(p *workerpool.Pool) {
	poolMu.Lock()
	defer poolMu.Unlock()
	pool = p
	poolSet = true
}

// sharedPool returns the batch pool, creating a GOMAXPROCS sized one on
// first use unless SetPool was called.
func sharedPool() *workerpool.Pool {
	poolMu.Lock()
	defer poolMu.Unlock()
	if !poolSet {
		pool = workerpool.New(0)
		poolSet = true
	}
	return pool
}

// batchPool returns the pool to run n items on, or nil to run inline.
func batchPool(n int) *workerpool.Pool {
	if n < ParallelThreshold {
		return nil
	}
	return sharedPool()
}

func checkBatch(dst, src []Vec4) {
	if len(dst) < len(src) {
		panic("linalg: dst is too short")
	}
}

// TransformBatch sets dst[i] = m.MulVec(src[i]) for every element of src.
// It panics if dst is shorter than src. dst and src may be the same slice.
func TransformBatch(m Mat4, dst, src []Vec4) {
	checkBatch(dst, src)
	mulVec := active.mat.mulVec
	run := func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = mulVec(&m, src[i])
		}
	}
	if p := batchPool(len(src)); p != nil {
		p.ParallelFor(len(src), run)
		return
	}
	run(0, len(src))
}

// NormalizeBatch sets dst[i] = src[i].Normalize() for every element of src.
// It panics if dst is shorter than src.
func NormalizeBatch(dst, src []Vec4) {
	checkBatch(dst, src)
	normalize := active.vec.normalize
	run := func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = normalize(src[i])
		}
	}
	if p := batchPool(len(src)); p != nil {
		p.ParallelForAtomicBatched(len(src), normalizeChunk, run)
		return
	}
	run(0, len(src))
}

// RotateBatch sets dst[i] = q.Rotate(src[i]) for every element of src.
// It panics if dst is shorter than src.
func RotateBatch(q Quat, dst, src []Vec4) {
	checkBatch(dst, src)
	rotate := active.quat.rotate
	run := func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = rotate(q, src[i])
		}
	}
	if p := batchPool(len(src)); p != nil {
		p.ParallelFor(len(src), run)
		return
	}
	run(0, len(src))
}

// DotBatch sets dst[i] = a[i].Dot(b[i]). It panics if the inputs differ in
// length or dst is shorter than them.
func DotBatch(dst []float32, a, b []Vec4) {
	if len(a) != len(b) {
		panic("linalg: DotBatch inputs differ in length")
	}
	if len(dst) < len(a) {
		panic("linalg: dst is too short")
	}
	dot := active.vec.dot
	if p := batchPool(len(a)); p != nil {
		p.ParallelForAtomic(len(a), func(i int) {
			dst[i] = dot(a[i], b[i])
		})
		return
	}
	for i := range a {
		dst[i] = dot(a[i], b[i])
	}
}
