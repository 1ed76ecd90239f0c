// Package core: private state exposure for white-box invariant tests.
// Only the test binary links this file; the public API stays closed.
package core

// RowOffsets exposes the CSR row offset array so tests can assert the
// structural invariant len(row) == NodeCount()+1 with
// row[NodeCount()] == EdgeCount() after arbitrary mutation sequences.
func (c *CSR[N, E]) RowOffsets() []int { return c.row }

// ColumnSlice exposes the full CSR column array for sortedness checks
// across every row window at once.
func (c *CSR[N, E]) ColumnSlice() []NodeID { return c.col }
