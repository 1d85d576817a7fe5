package rxdag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarGetReturnsCommittedValue(t *testing.T) {
	d := New()
	v := NewVar(d, 1)

	assert.Equal(t, 1, v.Get(d.Now()))
}

func TestVarSetIsDeferredUntilRecompute(t *testing.T) {
	d := New()
	v := NewVar(d, 0)

	assert.Equal(t, 0, v.Get(d.Now()))

	v.Set(d.Write(), 5)
	assert.Equal(t, 0, v.Get(d.Stale()))

	d.Recompute()
	assert.Equal(t, 5, v.Get(d.Stale()))
}

func TestVarSetLastWriteWins(t *testing.T) {
	d := New()
	v := NewVar(d, 0)

	w := d.Write()
	v.Set(w, 1)
	v.Set(w, 2)
	v.Set(w, 3)

	d.Recompute()
	assert.Equal(t, 3, v.Get(d.Stale()))
}

func TestVarModifyUsesCommittedValueNotPending(t *testing.T) {
	d := New()
	v := NewVar(d, 1)

	w := d.Write()
	v.Modify(w, func(n int) int { return n + 3 })
	v.Modify(w, func(n int) int { return n + 5 })

	d.Recompute()

	// Both modifications read the same committed value (1), so the
	// second overwrites the first's pending write: last write wins.
	assert.Equal(t, 6, v.Get(d.Stale()))
}

func TestVarSetSameValueTwiceIsIndistinguishableFromOnce(t *testing.T) {
	d := New()
	v := NewVar(d, 1)

	d.Now()
	w := d.Write()
	v.Set(w, 9)
	v.Set(w, 9)

	d.Recompute()
	assert.Equal(t, 9, v.Get(d.Stale()))
}
