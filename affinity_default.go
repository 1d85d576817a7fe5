//go:build !wasm

package rxdag

import "github.com/petermattis/goid"

// currentGoroutine stamps the goroutine a DAG was constructed from.
// Every exported DAG method checks against it so that cross-goroutine
// misuse panics instead of racing silently.
func currentGoroutine() int64 {
	return goid.Get()
}
