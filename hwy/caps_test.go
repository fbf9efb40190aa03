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

package hwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		name  string
		width int
	}{
		{DispatchScalar, "scalar", 16},
		{DispatchSSE2, "sse2", 16},
		{DispatchAVX2, "avx2", 32},
		{DispatchAVX512, "avx512", 64},
		{DispatchNEON, "neon", 16},
		{DispatchLevel(99), "unknown", 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.level.String())
		assert.Equal(t, tt.width, tt.level.Width(), tt.name)
	}
}

func TestLevelFor(t *testing.T) {
	sse := Caps{HaveSSE: true, HaveSSE2: true}
	avx2 := Caps{HaveSSE: true, HaveSSE2: true, HaveAVX: true, HaveAVX2: true}

	assert.Equal(t, DispatchScalar, LevelFor(Caps{}))
	assert.Equal(t, DispatchScalar, LevelFor(sse), "sse2 without archsimd kernels is scalar")
	assert.Equal(t, DispatchScalar, LevelFor(avx2))

	sse.HaveArchSIMD = true
	avx2.HaveArchSIMD = true
	assert.Equal(t, DispatchSSE2, LevelFor(sse))
	assert.Equal(t, DispatchAVX2, LevelFor(avx2))

	avx512 := avx2
	avx512.HaveAVX512 = true
	assert.Equal(t, DispatchAVX512, LevelFor(avx512))

	assert.Equal(t, DispatchNEON, LevelFor(Caps{HaveNEON: true}))
}

func TestCapsNormalize(t *testing.T) {
	// AVX2 without AVX is not a real machine, the chain is cut at the gap.
	c := Caps{HaveSSE: true, HaveSSE2: true, HaveAVX2: true, HaveFMA: true}.normalize()
	assert.True(t, c.HaveSSE2)
	assert.False(t, c.HaveAVX2)
	assert.False(t, c.HaveFMA)

	full := Caps{
		HaveSSE: true, HaveSSE2: true, HaveSSE3: true, HaveSSSE3: true,
		HaveSSE41: true, HaveSSE42: true, HaveAVX: true, HaveAVX2: true,
		HaveFMA: true, HaveAVX512: true,
	}
	assert.Equal(t, full, full.normalize())
}

func TestCapsString(t *testing.T) {
	assert.Equal(t, "none", Caps{}.String())
	assert.Equal(t, "sse sse2 fma", Caps{HaveSSE: true, HaveSSE2: true, HaveFMA: true}.String())
	assert.Equal(t, "neon", Caps{HaveNEON: true}.String())

	flags := Caps{HaveAVX: true}.Flags()
	require.Len(t, flags, 12)
	assert.Equal(t, "sse", flags[0].Name)
	assert.Equal(t, "archsimd", flags[len(flags)-1].Name)
	for _, f := range flags {
		assert.Equal(t, f.Name == "avx", f.Present, f.Name)
	}
}

func TestForceCaps(t *testing.T) {
	t.Setenv("HWY_NO_SIMD", "")
	t.Setenv("HWY_NO_FMA", "")
	detected := DetectedCaps()
	t.Cleanup(ResetCaps)

	ForceCaps(Caps{})
	assert.Equal(t, Caps{}, CurrentCaps())
	assert.Equal(t, DispatchScalar, CurrentLevel())
	assert.Equal(t, "scalar", CurrentName())
	assert.Equal(t, 16, CurrentWidth())

	ForceCaps(Caps{HaveSSE: true, HaveSSE2: true, HaveArchSIMD: true})
	assert.Equal(t, DispatchSSE2, CurrentLevel())
	assert.Equal(t, detected, DetectedCaps(), "forcing must not touch detection results")

	ResetCaps()
	assert.Equal(t, detected, CurrentCaps())
	assert.Equal(t, LevelFor(detected), CurrentLevel())
}

func TestForceCapsHonorsEnv(t *testing.T) {
	t.Cleanup(ResetCaps)
	avx2 := Caps{
		HaveSSE: true, HaveSSE2: true, HaveSSE3: true, HaveSSSE3: true,
		HaveSSE41: true, HaveSSE42: true, HaveAVX: true, HaveAVX2: true,
		HaveFMA: true, HaveArchSIMD: true,
	}

	t.Setenv("HWY_NO_SIMD", "")
	t.Setenv("HWY_NO_FMA", "1")
	ForceCaps(avx2)
	assert.False(t, CurrentCaps().HaveFMA)
	assert.True(t, CurrentCaps().HaveAVX2)
	assert.Equal(t, DispatchAVX2, CurrentLevel())

	t.Setenv("HWY_NO_SIMD", "1")
	ForceCaps(avx2)
	assert.Equal(t, Caps{}, CurrentCaps())
	assert.Equal(t, DispatchScalar, CurrentLevel())
}

func TestDetectedCapsConsistent(t *testing.T) {
	c := DetectedCaps()
	assert.Equal(t, c, c.normalize(), "detected caps must already be normalized")
	if NoSimdEnv() {
		assert.Equal(t, Caps{}, c)
	}
	if NoFMAEnv() {
		assert.False(t, c.HaveFMA)
	}
}

func TestEnvFlag(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_TEST_FLAG", tt.val)
		assert.Equal(t, tt.want, envFlag("HWY_TEST_FLAG"), "value %q", tt.val)
	}
}
