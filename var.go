package rxdag

import "github.com/AnatoleLucet/rxdag/internal"

func as[T any](v any) T {
	return v.(T)
}

// Var is an input node: its value is set by the host, never derived.
type Var[T any] struct {
	dag *DAG
	idx int
}

// NewVar allocates an input node holding initial.
func NewVar[T any](d *DAG, initial T) Var[T] {
	d.checkGoroutine()
	idx := d.store.Allocate(&internal.Node{Kind: internal.KindVar, Current: initial})
	return Var[T]{dag: d, idx: idx}
}

// Get returns the committed current value. Inside a compute/observer
// thunk this also records the Var as a dependency of the evaluating
// node.
func (v Var[T]) Get(ctx *ReadContext) T {
	ctx.checkDAG(v.dag)
	ctx.tracker.Record(v.idx)
	return as[T](v.dag.store.Get(v.idx).Current)
}

// Set stages a pending write, installed on the next Recompute. A
// second Set on the same Var before the next Recompute overwrites the
// first: last write wins within a batch.
func (v Var[T]) Set(ctx *WriteContext, value T) {
	ctx.checkDAG(v.dag)
	n := v.dag.store.Get(v.idx)
	n.Pending = value
	n.HasPending = true
}

// Modify stages a write computed from the Var's currently committed
// value, never from any value staged by an earlier, not-yet-recomputed
// Set/Modify call on the same Var.
func (v Var[T]) Modify(ctx *WriteContext, f func(T) T) {
	ctx.checkDAG(v.dag)
	n := v.dag.store.Get(v.idx)
	n.Pending = f(as[T](n.Current))
	n.HasPending = true
}
