//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures fall back to scalar mode for now.
	// Future implementations will add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support
	setDetected(Caps{})
}
