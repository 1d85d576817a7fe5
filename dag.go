package rxdag

import (
	"github.com/AnatoleLucet/rxdag/internal"
	"github.com/go-logr/logr"
)

// DAG owns every node's storage and is the sole entry point for
// construction, mutation, and recomputation. It assumes single-threaded
// cooperative use (see affinity_default.go / affinity_wasm.go) and
// performs no internal locking.
type DAG struct {
	store *internal.Store
	gid   int64
	log   logr.Logger
}

// New constructs an empty DAG, bound to the calling goroutine.
func New(opts ...Option) *DAG {
	d := &DAG{
		store: internal.NewStore(),
		gid:   currentGoroutine(),
		log:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *DAG) checkGoroutine() {
	if currentGoroutine() != d.gid {
		misuse(WrongGoroutine)
	}
}

// Recompute commits every staged write and re-evaluates any computed
// or observer node whose dependency set intersects the set of nodes
// that changed this round, walking the node arena exactly once in
// allocation order. See internal.Store.Recompute for the algorithm.
func (d *DAG) Recompute() {
	d.checkGoroutine()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error(nil, "thunk panicked during recompute", "panic", r)
			panic(r)
		}
	}()

	changed := d.store.Recompute()
	d.log.V(1).Info("recompute pass complete", "nodesChanged", len(changed), "totalNodes", d.store.Len())
}

// Now recomputes the DAG and returns a ReadContext valid until the next
// mutation. This is the only way to guarantee up-to-date reads.
func (d *DAG) Now() *ReadContext {
	d.checkGoroutine()
	d.Recompute()
	return &ReadContext{dag: d}
}

// Stale returns a ReadContext reflecting values as of the most recent
// Recompute (or initial construction), ignoring any outstanding pending
// writes. It never triggers recomputation.
func (d *DAG) Stale() *ReadContext {
	d.checkGoroutine()
	return &ReadContext{dag: d}
}

// Write returns a capability for staging pending writes on variables.
// Staging a write never itself mutates an observable value.
func (d *DAG) Write() *WriteContext {
	d.checkGoroutine()
	return &WriteContext{dag: d}
}
