package rxdag

import "github.com/go-logr/logr"

// Option configures a DAG at construction time. The zero-option call
// New() is fully functional: logging is discarded by default.
type Option func(*DAG)

// WithLogger attaches a structured logger. Recompute summarizes each
// pass at V(1); a thunk panic is logged at Error before it re-panics.
func WithLogger(l logr.Logger) Option {
	return func(d *DAG) {
		d.log = l
	}
}
