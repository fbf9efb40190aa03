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
	stdmath "math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// forEachBackend runs fn as a subtest once per backend the CPU supports,
// with that backend active. The automatic selection is restored afterwards.
func forEachBackend(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	t.Cleanup(Reselect)
	for _, b := range Backends() {
		if !b.Supported {
			continue
		}
		t.Run(b.Name, func(t *testing.T) {
			require.NoError(t, UseBackend(b.Name))
			fn(t)
		})
	}
}

// withBackend runs fn with the named backend active and returns its result.
func withBackend[T any](t *testing.T, name string, fn func() T) T {
	t.Helper()
	prev := ActiveBackend().Name
	require.NoError(t, UseBackend(name))
	defer func() { require.NoError(t, UseBackend(prev)) }()
	return fn()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xf00d))
}

func randFloat(r *rand.Rand, lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}

func randVec4(r *rand.Rand) Vec4 {
	return Vec4{randFloat(r, -10, 10), randFloat(r, -10, 10), randFloat(r, -10, 10), randFloat(r, -10, 10)}
}

func randMat4(r *rand.Rand) Mat4 {
	return Mat4FromCols(randVec4(r), randVec4(r), randVec4(r), randVec4(r))
}

func randUnitQuat(r *rand.Rand) Quat {
	for {
		q := Quat(randVec4(r))
		if q.Length() > 0.5 {
			return q.Normalize()
		}
	}
}

// det64 is a float64 Laplace expansion used as the determinant reference.
func det64(m [4][4]float64, n int) float64 {
	if n == 1 {
		return m[0][0]
	}
	var d float64
	sign := 1.0
	for col := range n {
		var sub [4][4]float64
		for r := 1; r < n; r++ {
			k := 0
			for c := range n {
				if c == col {
					continue
				}
				sub[r-1][k] = m[r][c]
				k++
			}
		}
		d += sign * m[0][col] * det64(sub, n-1)
		sign = -sign
	}
	return d
}

// rows64 returns m as float64 rows.
func rows64(m Mat4) [4][4]float64 {
	var out [4][4]float64
	for r := range 4 {
		for c := range 4 {
			out[r][c] = float64(m.At(r, c))
		}
	}
	return out
}

func relErr(got, want float32) float64 {
	if want == 0 {
		return stdmath.Abs(float64(got))
	}
	return stdmath.Abs(float64(got-want) / float64(want))
}

func inf32() float32 { return float32(stdmath.Inf(1)) }
func nan32() float32 { return float32(stdmath.NaN()) }

func isNaN32(x float32) bool { return x != x }
