// Package bfs: tunable options, error definitions, and the traversal
// result type.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gresta/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives the node and its depth in hops from the start.
	OnEnqueue func(id core.NodeID, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id core.NodeID, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// Run aborts and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor core.NodeID) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		OnEnqueue:      func(core.NodeID, int) {},
		OnDequeue:      func(core.NodeID, int) {},
		OnVisit:        func(core.NodeID, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.NodeID) bool { return true },
		err:            nil,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth in hops.
//
//	d > 0: visit nodes up to and including depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option, Run returns ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence (level by level).
//   - Depth: per-node distance in hops from the start, -1 if unvisited.
//   - Parent: per-node predecessor in the BFS tree. The start is its
//     own parent; entries for unvisited nodes are meaningless.
type Result struct {
	Order  []core.NodeID
	Depth  []int
	Parent []core.NodeID
}

// Visited reports whether v was reached by the traversal.
//
// Complexity: O(1).
func (r *Result) Visited(v core.NodeID) bool {
	return int(v) < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the hop-minimal path from the start to dest as a
// node sequence beginning at the start. It returns nil when dest was
// not reached or is out of range.
//
// Complexity: O(L) where L is the path length.
func (r *Result) PathTo(dest core.NodeID) []core.NodeID {
	if !r.Visited(dest) {
		return nil
	}

	// 1. Walk parent links back to the start (its own parent).
	path := []core.NodeID{dest}
	var cur core.NodeID
	for cur = dest; r.Parent[cur] != cur; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}

	// 2. Reverse in place to get start → dest order.
	var i, j int
	for i, j = 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
