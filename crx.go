package rxdag

import "github.com/AnatoleLucet/rxdag/internal"

// CRx is a computed node: a pure function of other nodes' values,
// addressed as one output slot of a possibly multi-output thunk.
type CRx[T any] struct {
	dag  *DAG
	idx  int
	slot int
}

// Get returns the node's most recently computed value for this slot.
// Inside a compute/observer thunk this also records the node (not the
// individual slot) as a dependency of the evaluating node.
func (c CRx[T]) Get(ctx *ReadContext) T {
	ctx.checkDAG(c.dag)
	ctx.tracker.Record(c.idx)
	return as[T](c.dag.store.Get(c.idx).Outputs[c.slot])
}

// NewCRx allocates a single-output computed node and evaluates it
// eagerly once, so Get may be called before any Recompute.
func NewCRx[T any](d *DAG, f func(*ReadContext) T) CRx[T] {
	d.checkGoroutine()
	idx := d.store.Allocate(&internal.Node{
		Kind:     internal.KindCRx,
		NumSlots: 1,
		Compute: func(tracker *internal.Tracker) []any {
			return []any{f(&ReadContext{dag: d, tracker: tracker})}
		},
	})
	d.store.EvaluateOnce(idx)
	return CRx[T]{dag: d, idx: idx, slot: 0}
}

// RunCRx allocates an observer: a node with no output slots, run only
// for the side effects its thunk performs. Evaluated eagerly once.
func RunCRx(d *DAG, f func(*ReadContext)) {
	d.checkGoroutine()
	idx := d.store.Allocate(&internal.Node{
		Kind: internal.KindObs,
		Compute: func(tracker *internal.Tracker) []any {
			f(&ReadContext{dag: d, tracker: tracker})
			return nil
		},
	})
	d.store.EvaluateOnce(idx)
}

// NewCRx2 allocates a two-output computed node sharing one thunk, one
// dependency set, and two independently addressable output slots.
func NewCRx2[A, B any](d *DAG, f func(*ReadContext) (A, B)) (CRx[A], CRx[B]) {
	d.checkGoroutine()
	idx := d.store.Allocate(&internal.Node{
		Kind:     internal.KindCRx,
		NumSlots: 2,
		Compute: func(tracker *internal.Tracker) []any {
			a, b := f(&ReadContext{dag: d, tracker: tracker})
			return []any{a, b}
		},
	})
	d.store.EvaluateOnce(idx)
	return CRx[A]{dag: d, idx: idx, slot: 0}, CRx[B]{dag: d, idx: idx, slot: 1}
}

// NewCRx3 allocates a three-output computed node. See NewCRx2.
func NewCRx3[A, B, C any](d *DAG, f func(*ReadContext) (A, B, C)) (CRx[A], CRx[B], CRx[C]) {
	d.checkGoroutine()
	idx := d.store.Allocate(&internal.Node{
		Kind:     internal.KindCRx,
		NumSlots: 3,
		Compute: func(tracker *internal.Tracker) []any {
			a, b, c := f(&ReadContext{dag: d, tracker: tracker})
			return []any{a, b, c}
		},
	})
	d.store.EvaluateOnce(idx)
	return CRx[A]{dag: d, idx: idx, slot: 0}, CRx[B]{dag: d, idx: idx, slot: 1}, CRx[C]{dag: d, idx: idx, slot: 2}
}

// NewCRx4 allocates a four-output computed node. See NewCRx2.
func NewCRx4[A, B, C, D any](d *DAG, f func(*ReadContext) (A, B, C, D)) (CRx[A], CRx[B], CRx[C], CRx[D]) {
	d.checkGoroutine()
	idx := d.store.Allocate(&internal.Node{
		Kind:     internal.KindCRx,
		NumSlots: 4,
		Compute: func(tracker *internal.Tracker) []any {
			a, b, c, e := f(&ReadContext{dag: d, tracker: tracker})
			return []any{a, b, c, e}
		},
	})
	d.store.EvaluateOnce(idx)
	return CRx[A]{dag: d, idx: idx, slot: 0}, CRx[B]{dag: d, idx: idx, slot: 1}, CRx[C]{dag: d, idx: idx, slot: 2}, CRx[D]{dag: d, idx: idx, slot: 3}
}

// NewCRx5 allocates a five-output computed node. See NewCRx2.
func NewCRx5[A, B, C, D, E any](d *DAG, f func(*ReadContext) (A, B, C, D, E)) (CRx[A], CRx[B], CRx[C], CRx[D], CRx[E]) {
	d.checkGoroutine()
	idx := d.store.Allocate(&internal.Node{
		Kind:     internal.KindCRx,
		NumSlots: 5,
		Compute: func(tracker *internal.Tracker) []any {
			a, b, c, e, g := f(&ReadContext{dag: d, tracker: tracker})
			return []any{a, b, c, e, g}
		},
	})
	d.store.EvaluateOnce(idx)
	return CRx[A]{dag: d, idx: idx, slot: 0}, CRx[B]{dag: d, idx: idx, slot: 1}, CRx[C]{dag: d, idx: idx, slot: 2}, CRx[D]{dag: d, idx: idx, slot: 3}, CRx[E]{dag: d, idx: idx, slot: 4}
}
