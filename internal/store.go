// Package internal holds the untyped node arena that backs the DAG's
// public, generic API. Nodes are identified by their index into the
// store and are never reordered or freed.
package internal

// Kind tags the three node variants the engine supports.
type Kind uint8

const (
	KindVar Kind = iota
	KindCRx
	KindObs
)

// Thunk evaluates a computed or observer node against a read-tracking
// Tracker and returns its outputs (empty for an observer).
type Thunk func(tracker *Tracker) []any

// Node is the untyped representation of a Var, CRx, or Obs. Typed
// wrappers in the parent package address a Node by its Store index.
type Node struct {
	Kind Kind

	// Var fields.
	Current    any
	Pending    any
	HasPending bool

	// CRx / Obs fields.
	Compute  Thunk
	Deps     []int
	Outputs  []any
	EverRan  bool
	NumSlots int
}

// Store is the append-only arena. Allocation order is load-bearing:
// Recompute relies on every node's dependencies having a strictly
// lower index than the node itself.
type Store struct {
	nodes []*Node
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Allocate(n *Node) int {
	s.nodes = append(s.nodes, n)
	return len(s.nodes) - 1
}

func (s *Store) Get(i int) *Node {
	return s.nodes[i]
}

func (s *Store) Len() int {
	return len(s.nodes)
}

// Recompute performs the single forward scan described by the
// engine's propagation algorithm: commit every pending Var write,
// then walk the arena in allocation order re-evaluating any CRx/Obs
// whose dependency set intersects the set of nodes that changed this
// round (or that has never run). Returns the set of node indices that
// changed this round.
func (s *Store) Recompute() map[int]bool {
	changed := make(map[int]bool)

	for i, n := range s.nodes {
		if n.Kind == KindVar && n.HasPending {
			n.Current = n.Pending
			n.Pending = nil
			n.HasPending = false
			changed[i] = true
		}
	}

	for i, n := range s.nodes {
		if n.Kind == KindVar {
			continue
		}

		if !n.EverRan || depsIntersect(n.Deps, changed) {
			s.evaluate(i, n)
			if n.Kind == KindCRx {
				changed[i] = true
			}
		}
	}

	return changed
}

// EvaluateOnce runs a single CRx/Obs node's thunk if it has never run.
// Used to give a newly constructed node its required initial eager
// evaluation without disturbing any other node's pending writes.
func (s *Store) EvaluateOnce(idx int) {
	n := s.nodes[idx]
	if !n.EverRan {
		s.evaluate(idx, n)
	}
}

func (s *Store) evaluate(idx int, n *Node) {
	tracker := newTracker()
	outputs := n.Compute(tracker)
	n.Deps = tracker.deps
	n.Outputs = outputs
	n.EverRan = true
}

func depsIntersect(deps []int, changed map[int]bool) bool {
	for _, d := range deps {
		if changed[d] {
			return true
		}
	}
	return false
}
