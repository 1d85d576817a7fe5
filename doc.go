// Package rxdag implements a signal-based change-propagation engine: a
// DAG of input variables (Var), derived computations (CRx), and
// side-effect observers (RunCRx), recomputed lazily and deterministically
// by a single forward scan over the order in which nodes were allocated.
//
// A DAG is single-threaded and cooperative: reads go through a
// ReadContext, writes stage a pending value through a WriteContext, and
// nothing observable changes until Recompute (or the implicit recompute
// inside Now) runs.
package rxdag
