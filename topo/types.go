// Package topo: shared state types for the ordering and cycle walks.
package topo

import (
	"errors"

	"github.com/katalvlaran/gresta/core"
)

// Node visitation states for the three-color walks.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current walk path.
	Black        // Black: the node and all its descendants are fully explored.
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Sort,
// SortDFS, HasCycles, or HasCyclesIterative.
var ErrGraphNil = errors.New("topo: graph is nil")

// Result holds a topological ordering attempt.
type Result struct {
	// Order lists resolved nodes so that for every edge u→v with both
	// endpoints present, u appears before v. With HasCycles set it is a
	// partial ordering; see the package documentation for which nodes
	// each sort can still resolve.
	Order []core.NodeID

	// HasCycles reports whether the graph contains at least one
	// directed cycle. When set, Order holds fewer than NodeCount
	// entries.
	HasCycles bool
}
