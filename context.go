package rxdag

import "github.com/AnatoleLucet/rxdag/internal"

// ReadContext is the capability to read node values. Obtained from
// DAG.Now or DAG.Stale, or handed transparently to a compute/observer
// thunk during evaluation, in which case every read it performs is
// also recorded as a dependency of the node being evaluated.
type ReadContext struct {
	dag     *DAG
	tracker *internal.Tracker
}

// WriteContext is the capability to stage pending writes on variables.
// It never mutates an observable value itself; only Recompute does.
type WriteContext struct {
	dag *DAG
}

func (c *ReadContext) checkDAG(d *DAG) {
	if c.dag != d {
		misuse(CrossDAG)
	}
}

func (c *WriteContext) checkDAG(d *DAG) {
	if c.dag != d {
		misuse(CrossDAG)
	}
}
