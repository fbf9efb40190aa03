// Package hwy reports the SIMD capabilities of the running CPU and the
// dispatch level the kernels in this module are selected against.
//
// It follows the Highway C++ library's design philosophy: write once,
// run optimally everywhere. Kernel packages register a scalar table and one
// table per instruction set, and pick the best one for CurrentCaps at init.
//
// Basic usage:
//
//	import "github.com/ajroetker/hwymath/hwy"
//
//	caps := hwy.CurrentCaps()
//	if caps.HaveFMA {
//		// fused multiply-add kernels are usable
//	}
//	fmt.Println(hwy.CurrentName()) // "sse2", "avx2", "scalar", ...
//
// Setting HWY_NO_SIMD in the environment clears every capability and forces
// the scalar kernels.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}
