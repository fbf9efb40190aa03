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
	"strings"
	"sync"
)

// Caps describes the CPU capabilities relevant to kernel selection.
//
// Each Have flag mirrors a HAVE_* feature macro: it is true when the
// extension is present on the running CPU and usable by this binary.
type Caps struct {
	// x86/amd64 instruction set extensions
	HaveSSE    bool
	HaveSSE2   bool
	HaveSSE3   bool
	HaveSSSE3  bool
	HaveSSE41  bool
	HaveSSE42  bool
	HaveAVX    bool
	HaveAVX2   bool
	HaveFMA    bool
	HaveAVX512 bool

	// ARM Advanced SIMD
	HaveNEON bool

	// HaveArchSIMD reports that the archsimd kernels were compiled in
	// (amd64 built with GOEXPERIMENT=simd).
	HaveArchSIMD bool
}

// Flag is a named capability bit, used for tabular output.
type Flag struct {
	Name    string
	Present bool
}

// Flags returns every capability in a stable order.
func (c Caps) Flags() []Flag {
	return []Flag{
		{"sse", c.HaveSSE},
		{"sse2", c.HaveSSE2},
		{"sse3", c.HaveSSE3},
		{"ssse3", c.HaveSSSE3},
		{"sse4.1", c.HaveSSE41},
		{"sse4.2", c.HaveSSE42},
		{"avx", c.HaveAVX},
		{"avx2", c.HaveAVX2},
		{"fma", c.HaveFMA},
		{"avx512", c.HaveAVX512},
		{"neon", c.HaveNEON},
		{"archsimd", c.HaveArchSIMD},
	}
}

// String returns the present flags separated by spaces, or "none".
func (c Caps) String() string {
	var names []string
	for _, f := range c.Flags() {
		if f.Present {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

// normalize clears flags whose prerequisites are missing, so that a later
// extension always implies the earlier ones.
func (c Caps) normalize() Caps {
	c.HaveSSE2 = c.HaveSSE2 && c.HaveSSE
	c.HaveSSE3 = c.HaveSSE3 && c.HaveSSE2
	c.HaveSSSE3 = c.HaveSSSE3 && c.HaveSSE3
	c.HaveSSE41 = c.HaveSSE41 && c.HaveSSSE3
	c.HaveSSE42 = c.HaveSSE42 && c.HaveSSE41
	c.HaveAVX = c.HaveAVX && c.HaveSSE42
	c.HaveAVX2 = c.HaveAVX2 && c.HaveAVX
	c.HaveFMA = c.HaveFMA && c.HaveAVX
	c.HaveAVX512 = c.HaveAVX512 && c.HaveAVX2
	return c
}

var (
	// capsMu guards every variable below and currentLevel.
	capsMu sync.RWMutex

	// detectedCaps holds what the dispatch_*.go init found on this machine.
	detectedCaps Caps

	// forcedCaps overrides detection for testing, nil when unset.
	forcedCaps *Caps
)

// CurrentCaps returns the capabilities kernels should be selected against.
// This is the detected set unless ForceCaps is in effect.
func CurrentCaps() Caps {
	capsMu.RLock()
	defer capsMu.RUnlock()
	if forcedCaps != nil {
		return *forcedCaps
	}
	return detectedCaps
}

// DetectedCaps returns the capabilities found at startup, ignoring ForceCaps.
func DetectedCaps() Caps {
	capsMu.RLock()
	defer capsMu.RUnlock()
	return detectedCaps
}

// ForceCaps overrides hardware detection with c and re-derives the dispatch
// level. HWY_NO_SIMD and HWY_NO_FMA still apply to the forced set. Flags the
// running CPU lacks must not be forced on when kernels will actually
// execute. This is intended for testing purposes only.
func ForceCaps(c Caps) {
	c = applyEnv(c)
	capsMu.Lock()
	defer capsMu.Unlock()
	forcedCaps = &c
	currentLevel = LevelFor(c)
}

// ResetCaps clears any forced capabilities and restores the detected level.
func ResetCaps() {
	capsMu.Lock()
	defer capsMu.Unlock()
	forcedCaps = nil
	currentLevel = LevelFor(detectedCaps)
}

// setDetected records the result of hardware detection.
// Called once from the architecture-specific init.
func setDetected(c Caps) {
	c = applyEnv(c)

	capsMu.Lock()
	defer capsMu.Unlock()
	detectedCaps = c
	currentLevel = LevelFor(c)
}

// applyEnv clears the flags disabled by HWY_NO_SIMD and HWY_NO_FMA and
// normalizes the result.
func applyEnv(c Caps) Caps {
	if NoSimdEnv() {
		c = Caps{}
	}
	if NoFMAEnv() {
		c.HaveFMA = false
	}
	return c.normalize()
}
