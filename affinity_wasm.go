//go:build wasm

package rxdag

// wasm has one real thread of JS execution; goroutine-affinity checks
// degenerate to a no-op.
func currentGoroutine() int64 {
	return 0
}
