package dijkstra

import (
	"errors"

	"github.com/katalvlaran/gresta/core"
)

// Sentinel errors returned by Run. Callers match them with errors.Is.
var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("dijkstra: graph must not be nil")

	// ErrNilArith is returned when the arithmetic argument is nil.
	ErrNilArith = errors.New("dijkstra: arith must not be nil")
)

// Options configures a single Run invocation.
//
// All fields are optional; DefaultOptions returns the unbounded
// configuration used when no Option is supplied.
type Options[W any] struct {
	// MaxDistance bounds the search radius. Nodes whose tentative
	// distance exceeds it (per arith.Compare) are never finalized and
	// report unreachable in the Result. Only consulted when
	// HasMaxDistance is true.
	MaxDistance W

	// HasMaxDistance records whether MaxDistance was set. A separate
	// flag is required because the zero value of W is a legitimate
	// bound for some weight types.
	HasMaxDistance bool
}

// Option mutates Options before a Run starts.
type Option[W any] func(*Options[W])

// DefaultOptions returns the canonical unbounded configuration.
func DefaultOptions[W any]() Options[W] {
	return Options[W]{}
}

// WithMaxDistance bounds the search: any node farther than limit from
// the start (strictly greater, per the run's arithmetic) stays
// unreached. Nodes at exactly limit are still finalized.
func WithMaxDistance[W any](limit W) Option[W] {
	return func(o *Options[W]) {
		o.MaxDistance = limit
		o.HasMaxDistance = true
	}
}

// Result holds the shortest-path tree produced by one Run.
//
// All query methods are bounds-checked: an index at or past the node
// count of the searched graph answers as unreachable instead of
// panicking.
type Result[W any] struct {
	start   core.NodeID
	reached []bool
	dist    []W
	prev    []core.NodeID
}

// Start reports the node the search began from.
func (r *Result[W]) Start() core.NodeID { return r.start }

// IsReachable reports whether v was finalized by the search.
//
// Complexity: O(1).
func (r *Result[W]) IsReachable(v core.NodeID) bool {
	if int(v) >= len(r.reached) {
		return false
	}

	return r.reached[v]
}

// DistanceTo returns the minimal cost from the start to v. The second
// return is false when v is unreachable or out of range, in which case
// the first return is the zero value of W and carries no meaning.
//
// Complexity: O(1).
func (r *Result[W]) DistanceTo(v core.NodeID) (W, bool) {
	if !r.IsReachable(v) {
		var zero W

		return zero, false
	}

	return r.dist[v], true
}

// PathTo reconstructs the minimal-cost path from the start to v as a
// node sequence beginning at the start and ending at v. It returns nil
// when v is unreachable or out of range. The path to the start itself
// is the one-element sequence [start].
//
// Complexity: O(L) where L is the path length.
func (r *Result[W]) PathTo(v core.NodeID) []core.NodeID {
	if !r.IsReachable(v) {
		return nil
	}

	// 1. Walk predecessor links back to the start.
	path := []core.NodeID{v}
	var cur core.NodeID
	for cur = v; cur != r.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}

	// 2. Reverse in place: the walk produced target-to-start order.
	var i, j int
	for i, j = 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
