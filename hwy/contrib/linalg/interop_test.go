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
	"golang.org/x/image/math/f32"
)

func TestF32Vec4(t *testing.T) {
	v := V4(1, 2, 3, 4)
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, v.F32())
	assert.Equal(t, v, FromF32Vec4(v.F32()))
}

func TestF32Mat4(t *testing.T) {
	m := sample()
	rowMajor := m.F32()
	assert.Equal(t, f32.Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		2, 6, 4, 8,
		3, 1, 1, 2,
	}, rowMajor)
	assert.Equal(t, m, FromF32Mat4(rowMajor))

	tr := Translation(5, 6, 7)
	assert.Equal(t, float32(5), tr.F32()[3], "translation sits at the end of the first row")
}

func TestF32Mat3AndAff3(t *testing.T) {
	m := Translation(5, 6, 7).Mul(Scaling(2, 3, 4))
	assert.Equal(t, f32.Mat3{2, 0, 0, 0, 3, 0, 0, 0, 4}, m.F32Mat3())
	assert.Equal(t, f32.Aff3{2, 0, 5, 0, 3, 6}, m.F32Aff3())
}
