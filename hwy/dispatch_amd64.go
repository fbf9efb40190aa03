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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// The CPU flags are still reported so callers can see what the machine
// offers, but HaveArchSIMD stays false and the scalar kernels are selected.
// Build with GOEXPERIMENT=simd to run the SSE/FMA kernels.

func init() {
	setDetected(detectCaps())
}

func detectCaps() Caps {
	return Caps{
		// SSE is implied by SSE2, which is the amd64 baseline.
		HaveSSE:    cpu.X86.HasSSE2,
		HaveSSE2:   cpu.X86.HasSSE2,
		HaveSSE3:   cpu.X86.HasSSE3,
		HaveSSSE3:  cpu.X86.HasSSSE3,
		HaveSSE41:  cpu.X86.HasSSE41,
		HaveSSE42:  cpu.X86.HasSSE42,
		HaveAVX:    cpu.X86.HasAVX,
		HaveAVX2:   cpu.X86.HasAVX2,
		HaveFMA:    cpu.X86.HasFMA,
		HaveAVX512: cpu.X86.HasAVX512,
	}
}
