package internal

import "slices"

// Tracker is the per-evaluation scratch set that discovers a computed
// or observer node's dependencies: every node read while a thunk runs
// is recorded here, then snapshotted into the node's Deps, replacing
// whatever the previous run recorded. Represented as a de-duplicated
// slice of read indices rather than a map.
type Tracker struct {
	deps []int
}

func newTracker() *Tracker {
	return &Tracker{}
}

// Record notes that idx was read during the thunk evaluation this
// Tracker is scoped to. A nil Tracker (reads made through a context
// obtained from Now/Stale, outside any thunk) is a valid no-op target.
func (t *Tracker) Record(idx int) {
	if t == nil {
		return
	}
	if !slices.Contains(t.deps, idx) {
		t.deps = append(t.deps, idx)
	}
}
