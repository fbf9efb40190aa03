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
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ajroetker/hwymath/hwy"
)

var (
	// ErrUnknownBackend is returned by UseBackend for a name that was never
	// registered.
	ErrUnknownBackend = errors.New("linalg: unknown backend")

	// ErrBackendUnsupported is returned by UseBackend when the current CPU
	// capabilities do not cover what the backend requires.
	ErrBackendUnsupported = errors.New("linalg: backend not supported on this CPU")
)

// Backend is one implementation of the Vec4, Mat4 and Quat kernel tables.
type Backend struct {
	// Name identifies the backend, e.g. "scalar", "sse", "fma".
	Name string

	// Level is the dispatch level the kernels are written for.
	Level hwy.DispatchLevel

	// Priority orders selection: the supported backend with the highest
	// priority wins.
	Priority int

	// Requires lists the capabilities the backend needs, for display.
	Requires string

	supported func(hwy.Caps) bool

	vec  vec4Kernels
	mat  mat4Kernels
	quat quatKernels
}

// BackendInfo describes a registered backend.
type BackendInfo struct {
	Name      string
	Level     hwy.DispatchLevel
	Priority  int
	Requires  string
	Supported bool
	Active    bool
}

var (
	// backendsMu guards backends. active is written only by Reselect and
	// UseBackend, which must not race with kernel calls.
	backendsMu sync.Mutex
	backends   []*Backend

	// active holds the kernel tables every Vec4, Mat4 and Quat method
	// dispatches through.
	active = scalarBackend
)

var scalarBackend = register(&Backend{
	Name:      "scalar",
	Level:     hwy.DispatchScalar,
	Priority:  0,
	Requires:  "none",
	supported: func(hwy.Caps) bool { return true },
	vec:       baseVec4,
	mat:       baseMat4,
	quat:      baseQuat,
})

// register adds b to the backend list. Backends are registered from
// package-level variable initializers so that every one of them is known
// before init runs Reselect.
func register(b *Backend) *Backend {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends = append(backends, b)
	slices.SortStableFunc(backends, func(x, y *Backend) int {
		return y.Priority - x.Priority
	})
	return b
}

func init() {
	Reselect()
}

// Reselect picks the highest priority backend supported by
// hwy.CurrentCaps. Call it after hwy.ForceCaps or hwy.ResetCaps.
func Reselect() {
	caps := hwy.CurrentCaps()
	backendsMu.Lock()
	defer backendsMu.Unlock()
	for _, b := range backends {
		if b.supported(caps) {
			active = b
			return
		}
	}
	active = scalarBackend
}

// UseBackend makes the named backend active. It fails with
// ErrUnknownBackend or ErrBackendUnsupported and leaves the active backend
// unchanged in that case.
//
// Switching backends while other goroutines call into the package is a
// data race. This is intended for testing and startup configuration.
func UseBackend(name string) error {
	caps := hwy.CurrentCaps()
	backendsMu.Lock()
	defer backendsMu.Unlock()
	for _, b := range backends {
		if b.Name != name {
			continue
		}
		if !b.supported(caps) {
			return fmt.Errorf("%w: %s requires %s, have %s", ErrBackendUnsupported, name, b.Requires, caps)
		}
		active = b
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// ActiveBackend describes the backend kernels currently dispatch to.
func ActiveBackend() BackendInfo {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	return active.info(hwy.CurrentCaps(), active)
}

// Backends lists every registered backend, highest priority first.
func Backends() []BackendInfo {
	caps := hwy.CurrentCaps()
	backendsMu.Lock()
	defer backendsMu.Unlock()
	infos := make([]BackendInfo, 0, len(backends))
	for _, b := range backends {
		infos = append(infos, b.info(caps, active))
	}
	return infos
}

func (b *Backend) info(caps hwy.Caps, cur *Backend) BackendInfo {
	return BackendInfo{
		Name:      b.Name,
		Level:     b.Level,
		Priority:  b.Priority,
		Requires:  b.Requires,
		Supported: b.supported(caps),
		Active:    b == cur,
	}
}
