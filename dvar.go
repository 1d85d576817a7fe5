package rxdag

// DVar is a derived view into a parent Var: not a separate graph node,
// but a handle that reads and writes through the parent via a pair of
// accessor/mutator closures. Set performs a read-modify-write against
// the parent's currently committed value (never a not-yet-recomputed
// pending value), the same rule Var.Modify follows and for the same
// reason: two DVars split off the same parent stay last-write-wins
// rather than silently composing through a shared pending slot.
type DVar[S, T any] struct {
	parent Var[S]
	get    func(S) T
	set    func(S, T) S
}

// Derive builds a DVar projecting T out of a Var[S]. get extracts the
// projected value; set takes the parent's current value and the new
// projected value and returns the parent's next value.
func Derive[S, T any](v Var[S], get func(S) T, set func(S, T) S) DVar[S, T] {
	return DVar[S, T]{parent: v, get: get, set: set}
}

func (dv DVar[S, T]) Get(ctx *ReadContext) T {
	return dv.get(dv.parent.Get(ctx))
}

func (dv DVar[S, T]) Set(ctx *WriteContext, value T) {
	dv.parent.Modify(ctx, func(s S) S {
		return dv.set(s, value)
	})
}

// DCRx is the read-only analogue of DVar, projecting out of a CRx
// instead of a Var. There is no DCRx.Set: a computed node's value is
// never written directly.
type DCRx[S, T any] struct {
	parent CRx[S]
	get    func(S) T
}

// DeriveCRx builds a DCRx projecting T out of a CRx[S].
func DeriveCRx[S, T any](c CRx[S], get func(S) T) DCRx[S, T] {
	return DCRx[S, T]{parent: c, get: get}
}

func (dc DCRx[S, T]) Get(ctx *ReadContext) T {
	return dc.get(dc.parent.Get(ctx))
}
