// Package dfs defines types and options for depth-first traversal,
// including pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"errors"

	"github.com/katalvlaran/gresta/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Run or
// RunIterative.
var ErrGraphNil = errors.New("dfs: graph is nil")

// NoDepthLimit disables depth limiting; it is the MaxDepth default.
const NoDepthLimit = -1

// Option configures optional behavior of DFS traversal.
// Use with Run(g, start, opts...) or RunIterative(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a
	// node (pre-order). Returning an error aborts traversal with that
	// error.
	OnVisit func(id core.NodeID) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order). Returning an error aborts
	// traversal with that error.
	OnExit func(id core.NodeID) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the root of each tree. Default is
	// NoDepthLimit.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before
	// descending. Return true to traverse into that neighbor, false to
	// skip it.
	FilterNeighbor func(id core.NodeID) bool

	// FullTraversal, if true, walks from every unvisited node of the
	// graph in ascending index order, covering disconnected components
	// (forest traversal). The start argument is ignored. Default is
	// false.
	FullTraversal bool
}

// DefaultOptions returns an Options struct with:
//   - no pre-/post-order hooks
//   - no depth limit (MaxDepth = NoDepthLimit)
//   - no neighbor filtering
//   - single-source traversal (FullTraversal = false)
func DefaultOptions() Options {
	return Options{
		OnVisit:        nil,
		OnExit:         nil,
		MaxDepth:       NoDepthLimit,
		FilterNeighbor: nil,
		FullTraversal:  false,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a node is first discovered.
func WithOnVisit(fn func(id core.NodeID) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a node's descendants have been fully
// explored.
func WithOnExit(fn func(id core.NodeID) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only tree roots are visited; a negative limit
// disables the check.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(id) == false, that neighbor is skipped and counted in
// Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(id core.NodeID) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables forest traversal.
// When set, the walk restarts from each unvisited node in ascending
// index order until every node is covered.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in discovery sequence (pre-order).
	Order []core.NodeID

	// Depth holds each node's distance in tree edges from its root, or
	// -1 if the node was never reached.
	Depth []int

	// Parent holds the node each entry was first discovered from. Tree
	// roots are their own parent; entries for unreached nodes are
	// meaningless.
	Parent []core.NodeID

	// SkippedNeighbors reports how many neighbor edges were skipped due
	// to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}

// Visited reports whether v was reached by the traversal.
//
// Complexity: O(1).
func (r *Result) Visited(v core.NodeID) bool {
	return int(v) < len(r.Depth) && r.Depth[v] >= 0
}
