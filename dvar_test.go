package rxdag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDVarProjectsIntoByteOfByteSlice(t *testing.T) {
	d := New()
	v := NewVar(d, []byte("abc"))

	dv := Derive(v,
		func(s []byte) byte { return s[0] },
		func(s []byte, b byte) []byte {
			next := append([]byte{}, s...)
			next[0] = b
			return next
		},
	)

	dv.Set(d.Write(), 'x')
	d.Now()

	assert.Equal(t, byte('x'), dv.Get(d.Stale()))
	assert.Equal(t, []byte("xbc"), v.Get(d.Stale()))
}

func TestDVarMultipleSetsBeforeRecomputeAreLastWriteWins(t *testing.T) {
	d := New()
	v := NewVar(d, []int{1, 2, 3})

	at := func(i int) DVar[[]int, int] {
		return Derive(v,
			func(s []int) int { return s[i] },
			func(s []int, val int) []int {
				next := append([]int{}, s...)
				next[i] = val
				return next
			},
		)
	}

	w := d.Write()
	at(0).Set(w, 10)
	at(1).Set(w, 20)
	at(2).Set(w, 30)
	d.Recompute()

	// Each at(i).Set reads v's committed value (not any other DVar's
	// pending write) and stages a full-slice replacement, so only the
	// last staged write survives.
	assert.Equal(t, []int{1, 2, 30}, v.Get(d.Stale()))
}

func TestDCRxProjectsReadOnlyOutOfComputed(t *testing.T) {
	d := New()
	v := NewVar(d, [2]int{1, 2})
	c := NewCRx(d, func(ctx *ReadContext) [2]int {
		pair := v.Get(ctx)
		return [2]int{pair[0] * 10, pair[1] * 10}
	})

	first := DeriveCRx(c, func(p [2]int) int { return p[0] })
	second := DeriveCRx(c, func(p [2]int) int { return p[1] })

	assert.Equal(t, 10, first.Get(d.Stale()))
	assert.Equal(t, 20, second.Get(d.Stale()))

	v.Set(d.Write(), [2]int{3, 4})
	d.Now()

	assert.Equal(t, 30, first.Get(d.Stale()))
	assert.Equal(t, 40, second.Get(d.Stale()))
}
