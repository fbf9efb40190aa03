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

package math

import (
	stdmath "math"
	"testing"
)

// approxEqual32 checks if two float32 values are approximately equal
func approxEqual32(a, b, epsilon float32) bool {
	if stdmath.IsNaN(float64(a)) && stdmath.IsNaN(float64(b)) {
		return true
	}
	if stdmath.IsInf(float64(a), 0) && stdmath.IsInf(float64(b), 0) {
		return (a > 0) == (b > 0)
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}

func TestSinCos32(t *testing.T) {
	inputs := []float32{
		0, 0.1, -0.1, 0.5, -0.5, 0.78, 1, -1, 1.5707964, 2, -2, 2.5, 3,
		3.1415927, -3.1415927, 4, -4, 5.5, 6.2831855, 10, -10, 100, -100, 1000,
	}
	for _, x := range inputs {
		s, c := SinCos32(x)
		wantS := float32(stdmath.Sin(float64(x)))
		wantC := float32(stdmath.Cos(float64(x)))
		// Large arguments lose a few ulps in the float32 reduction result.
		tol := float32(2e-6)
		if stdmath.Abs(float64(x)) > 50 {
			tol = 1e-4
		}
		if !approxEqual32(s, wantS, tol) {
			t.Errorf("Sin32(%v) = %v, want %v", x, s, wantS)
		}
		if !approxEqual32(c, wantC, tol) {
			t.Errorf("Cos32(%v) = %v, want %v", x, c, wantC)
		}
		if got := Sin32(x); got != s {
			t.Errorf("Sin32(%v) = %v, SinCos32 gave %v", x, got, s)
		}
		if got := Cos32(x); got != c {
			t.Errorf("Cos32(%v) = %v, SinCos32 gave %v", x, got, c)
		}
	}
}

func TestSinCos32SpecialValues(t *testing.T) {
	for _, x := range []float32{float32(stdmath.NaN()), float32(stdmath.Inf(1)), float32(stdmath.Inf(-1))} {
		s, c := SinCos32(x)
		if !stdmath.IsNaN(float64(s)) || !stdmath.IsNaN(float64(c)) {
			t.Errorf("SinCos32(%v) = (%v, %v), want NaN", x, s, c)
		}
	}
}

func TestTan32(t *testing.T) {
	for _, x := range []float32{0, 0.3, -0.7, 1.2} {
		want := float32(stdmath.Tan(float64(x)))
		if got := Tan32(x); !approxEqual32(got, want, 1e-5) {
			t.Errorf("Tan32(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestAcos32Clamps(t *testing.T) {
	tests := []struct {
		x    float32
		want float32
	}{
		{1, 0},
		{1.0000001, 0},
		{-1.0000001, Pi32},
		{0, HalfPi32},
	}
	for _, tt := range tests {
		if got := Acos32(tt.x); !approxEqual32(got, tt.want, 1e-6) {
			t.Errorf("Acos32(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := Acos32(float32(stdmath.NaN())); !stdmath.IsNaN(float64(got)) {
		t.Errorf("Acos32(NaN) = %v, want NaN", got)
	}
}

func TestInvSqrt(t *testing.T) {
	inputs := []float32{1e-30, 1e-6, 0.25, 0.5, 1, 2, 3, 4, 10, 123.456, 1e6, 3e30}
	for _, x := range inputs {
		want := InvSqrt32(x)
		got := FastInvSqrt32(x)
		rel := stdmath.Abs(float64(got-want)) / float64(want)
		if rel > 1e-5 {
			t.Errorf("FastInvSqrt32(%v) = %v, want %v (rel err %g)", x, got, want, rel)
		}
	}
}

func TestInvSqrtSpecialValues(t *testing.T) {
	if got := FastInvSqrt32(0); !stdmath.IsInf(float64(got), 1) {
		t.Errorf("FastInvSqrt32(0) = %v, want +Inf", got)
	}
	if got := InvSqrt32(0); !stdmath.IsInf(float64(got), 1) {
		t.Errorf("InvSqrt32(0) = %v, want +Inf", got)
	}
	if got := FastInvSqrt32(float32(stdmath.Inf(1))); got != 0 {
		t.Errorf("FastInvSqrt32(+Inf) = %v, want 0", got)
	}
	if got := FastInvSqrt32(-1); !stdmath.IsNaN(float64(got)) {
		t.Errorf("FastInvSqrt32(-1) = %v, want NaN", got)
	}
}

func TestNewtonRaphsonConverges(t *testing.T) {
	x := float32(7)
	want := InvSqrt32(x)
	y := float32(0.3) // coarse estimate
	prevErr := stdmath.Inf(1)
	for range 4 {
		y = NewtonRaphsonRsqrt32(x, y)
		err := stdmath.Abs(float64(y - want))
		if err > prevErr {
			t.Fatalf("refinement diverged: err %g after %g", err, prevErr)
		}
		prevErr = err
	}
	if prevErr > 1e-6 {
		t.Errorf("after 4 steps err = %g, want < 1e-6", prevErr)
	}
}

func TestSqrt32(t *testing.T) {
	if got := Sqrt32(16); got != 4 {
		t.Errorf("Sqrt32(16) = %v, want 4", got)
	}
	if got := Sqrt32(-1); !stdmath.IsNaN(float64(got)) {
		t.Errorf("Sqrt32(-1) = %v, want NaN", got)
	}
}

func TestCommon(t *testing.T) {
	if Abs(float32(-3)) != 3 || Abs(3.5) != 3.5 {
		t.Error("Abs")
	}
	if got := Abs(float32(stdmath.Copysign(0, -1))); stdmath.Signbit(float64(got)) {
		t.Error("Abs(-0) should be +0")
	}
	if Clamp(float32(5), 0, 1) != 1 || Clamp(float32(-5), 0, 1) != 0 || Clamp(float32(0.5), 0, 1) != 0.5 {
		t.Error("Clamp")
	}
	if Min(float32(1), 2) != 1 || Max(float32(1), 2) != 2 {
		t.Error("Min/Max")
	}
	nan := float32(stdmath.NaN())
	if Min(nan, 2) != 2 || Max(nan, 2) != 2 {
		t.Error("Min/Max should return the second operand for NaN")
	}
	if Saturate(1.5) != 1 {
		t.Error("Saturate")
	}
	if Sign(float32(-2)) != -1 || Sign(float32(0)) != 0 || Sign(2.0) != 1 {
		t.Error("Sign")
	}
	if Lerp(float32(2), 4, 0.5) != 3 {
		t.Error("Lerp")
	}
	if InverseLerp(float32(2), 4, 3) != 0.5 || InverseLerp(float32(1), 1, 3) != 0 {
		t.Error("InverseLerp")
	}
	if SmoothStep(float32(0), 1, 0.5) != 0.5 || SmoothStep(float32(0), 1, -1) != 0 || SmoothStep(float32(0), 1, 2) != 1 {
		t.Error("SmoothStep")
	}
	if !approxEqual32(Radians(float32(180)), Pi32, 1e-6) || !approxEqual32(Degrees(HalfPi32), 90, 1e-4) {
		t.Error("Radians/Degrees")
	}
}

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		eps  float32
		abs  bool
		rel  bool
	}{
		{"identical", 1, 1, 0, true, true},
		{"within", 1, 1.0000005, Epsilon32, true, true},
		{"outside", 1, 1.1, Epsilon32, false, false},
		{"large relative", 1e6, 1e6 + 0.5, Epsilon32, false, true},
		{"infinities", float32(stdmath.Inf(1)), float32(stdmath.Inf(1)), Epsilon32, true, true},
		{"nan", float32(stdmath.NaN()), float32(stdmath.NaN()), 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApproxEqual(tt.a, tt.b, tt.eps); got != tt.abs {
				t.Errorf("ApproxEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.abs)
			}
			if got := ApproxEqualRel(tt.a, tt.b, tt.eps); got != tt.rel {
				t.Errorf("ApproxEqualRel(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.rel)
			}
		})
	}
	if !IsNearZero(float32(1e-7), Epsilon32) || IsNearZero(float32(1e-5), Epsilon32) {
		t.Error("IsNearZero")
	}
	if IsFinite32(float32(stdmath.NaN())) || IsFinite32(float32(stdmath.Inf(-1))) || !IsFinite32(1) {
		t.Error("IsFinite32")
	}
}

func BenchmarkSinCos32(b *testing.B) {
	var s, c float32
	for i := 0; i < b.N; i++ {
		s, c = SinCos32(float32(i%1000) * 0.01)
	}
	_, _ = s, c
}

func BenchmarkFastInvSqrt32(b *testing.B) {
	var y float32
	for i := 0; i < b.N; i++ {
		y = FastInvSqrt32(float32(i%1000) + 1)
	}
	_ = y
}
