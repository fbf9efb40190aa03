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
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set the kernels run on.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates 128-bit SSE class instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
// Scalar mode reports 16 so 4-wide float code sees one "register".
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files and by ForceCaps.
var currentLevel DispatchLevel

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	capsMu.RLock()
	defer capsMu.RUnlock()
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return CurrentLevel().Width()
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return CurrentLevel().String()
}

// LevelFor derives the dispatch level a set of capabilities supports.
//
// x86 levels above scalar require the archsimd kernels to be compiled in;
// without them an AVX2 machine still runs the scalar code.
func LevelFor(c Caps) DispatchLevel {
	switch {
	case c.HaveArchSIMD && c.HaveAVX512:
		return DispatchAVX512
	case c.HaveArchSIMD && c.HaveAVX2:
		return DispatchAVX2
	case c.HaveArchSIMD && c.HaveSSE2:
		return DispatchSSE2
	case c.HaveNEON:
		return DispatchNEON
	default:
		return DispatchScalar
	}
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, every capability flag is cleared and the scalar kernels are used
// regardless of CPU capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	return envFlag("HWY_NO_SIMD")
}

// NoFMAEnv checks if the HWY_NO_FMA environment variable is set.
// When set, HaveFMA is cleared so fused multiply-add kernels are skipped.
func NoFMAEnv() bool {
	return envFlag("HWY_NO_FMA")
}

func envFlag(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
