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
	"fmt"

	"github.com/ajroetker/hwymath/hwy/contrib/math"
)

// Check is the outcome of one identity evaluated on one backend.
type Check struct {
	Backend string `json:"backend" yaml:"backend"`
	Name    string `json:"name" yaml:"name"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// checkMatrix is a fixed well conditioned matrix with determinant 72.
var checkMatrix = Mat4FromCols(
	Vec4{1, 5, 2, 3},
	Vec4{2, 6, 6, 1},
	Vec4{3, 7, 4, 1},
	Vec4{4, 8, 8, 2},
)

// identities returns "" when the identity holds and a description of the
// mismatch otherwise.
var identities = []struct {
	name string
	eval func() string
}{
	{"det(I) = 1", func() string {
		if d := Identity4().Determinant(); d != 1 {
			return fmt.Sprintf("got %g", d)
		}
		return ""
	}},
	{"inv(I) = I", func() string {
		if inv := Identity4().Inverse(); inv != Identity4() {
			return fmt.Sprintf("got %v", inv)
		}
		return ""
	}},
	{"inv(M)*M = I", func() string {
		if p := checkMatrix.Inverse().Mul(checkMatrix); !p.ApproxEqual(Identity4(), 1e-4) {
			return fmt.Sprintf("got %v", p)
		}
		return ""
	}},
	{"det(M) = 72", func() string {
		if d := checkMatrix.Determinant(); !math.ApproxEqual(d, 72, 1e-3) {
			return fmt.Sprintf("got %g", d)
		}
		return ""
	}},
	{"transpose(transpose(M)) = M", func() string {
		if tt := checkMatrix.Transpose().Transpose(); tt != checkMatrix {
			return fmt.Sprintf("got %v", tt)
		}
		return ""
	}},
	{"|normalize(v)| = 1", func() string {
		if l := V4(3, -4, 12, 84).Normalize().Length(); !math.ApproxEqual(l, 1, 1e-5) {
			return fmt.Sprintf("got %g", l)
		}
		return ""
	}},
	{"rsqrt(0) = +Inf", func() string {
		if r := Splat4(0).Rsqrt(); !(r.X > 0 && !math.IsFinite32(r.X)) {
			return fmt.Sprintf("got %g", r.X)
		}
		return ""
	}},
	{"rotate(z90, x) = y", func() string {
		q := QuatFromAxisAngle(Direction(0, 0, 1), math.HalfPi32)
		if r := q.Rotate(Direction(1, 0, 0)); !r.ApproxEqual(Direction(0, 1, 0), 1e-5) {
			return fmt.Sprintf("got %v", r)
		}
		return ""
	}},
	{"q*inv(q) = 1", func() string {
		q := Quat{1, 2, 3, 4}
		if p := q.Mul(q.Inverse()); !p.ApproxEqual(IdentityQuat(), 1e-5) {
			return fmt.Sprintf("got %v", p)
		}
		return ""
	}},
}

// SelfCheck evaluates a fixed set of algebraic identities with the named
// backend active and restores the previously active backend. It fails only
// when the backend cannot be selected; failed identities are reported in
// the returned checks.
func SelfCheck(name string) ([]Check, error) {
	backendsMu.Lock()
	prev := active
	backendsMu.Unlock()

	if err := UseBackend(name); err != nil {
		return nil, err
	}
	defer func() {
		backendsMu.Lock()
		active = prev
		backendsMu.Unlock()
	}()

	checks := make([]Check, 0, len(identities))
	for _, id := range identities {
		detail := id.eval()
		checks = append(checks, Check{
			Backend: name,
			Name:    id.name,
			Passed:  detail == "",
			Detail:  detail,
		})
	}
	return checks, nil
}
