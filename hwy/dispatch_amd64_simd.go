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

//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

func init() {
	setDetected(detectCaps())
}

func detectCaps() Caps {
	// archsimd answers for the levels its own code paths need; x/sys/cpu
	// covers the individual SSE steps and FMA, which archsimd does not expose.
	return Caps{
		HaveSSE:      cpu.X86.HasSSE2,
		HaveSSE2:     cpu.X86.HasSSE2,
		HaveSSE3:     cpu.X86.HasSSE3,
		HaveSSSE3:    cpu.X86.HasSSSE3,
		HaveSSE41:    cpu.X86.HasSSE41,
		HaveSSE42:    cpu.X86.HasSSE42,
		HaveAVX:      archsimd.X86.AVX(),
		HaveAVX2:     archsimd.X86.AVX2(),
		HaveFMA:      cpu.X86.HasFMA,
		HaveAVX512:   archsimd.X86.AVX512(),
		HaveArchSIMD: true,
	}
}
