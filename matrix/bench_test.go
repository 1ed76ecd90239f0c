// SPDX-License-Identifier: MIT
// Package matrix_test benchmarks contrasting Dense against the CSR
// complexity profile: constant-time edge writes, linear row scans.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gresta/core"
	"github.com/katalvlaran/gresta/matrix"
)

const benchNodes = 512

// BenchmarkDense_AddEdge measures the O(1) slot write, the operation
// Dense wins over CSR's insert-then-shift.
func BenchmarkDense_AddEdge(b *testing.B) {
	m := matrix.NewWithNodes[core.None, int](benchNodes)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := core.NodeID(i % benchNodes)
		dst := core.NodeID((i * 7) % benchNodes)
		_, _ = m.AddEdge(src, dst, i)
	}
}

// BenchmarkDense_ContainsEdge measures the O(1) occupancy probe.
func BenchmarkDense_ContainsEdge(b *testing.B) {
	m := matrix.NewWithNodes[core.None, int](benchNodes)
	var v core.NodeID
	for v = 0; v < benchNodes; v++ {
		_, _ = m.AddEdge(v, (v*31)%benchNodes, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.ContainsEdge(core.NodeID(i%benchNodes), core.NodeID((i*13)%benchNodes))
	}
}

// BenchmarkDense_Neighbors measures the O(V) row scan per node, the
// operation CSR wins.
func BenchmarkDense_Neighbors(b *testing.B) {
	m := matrix.NewWithNodes[core.None, int](benchNodes)
	var src, k core.NodeID
	for src = 0; src < benchNodes; src++ {
		for k = 0; k < 16; k++ {
			_, _ = m.AddEdge(src, (src+k)%benchNodes, 1)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for nb, w := range m.Neighbors(core.NodeID(i % benchNodes)) {
			sum += int(nb) + w
		}
	}
	_ = sum
}

// BenchmarkDense_AddNode_Growth includes the O(capacity²) doubling
// reallocations in the measured path.
func BenchmarkDense_AddNode_Growth(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := matrix.New[core.None, core.None]()
		for j := 0; j < 256; j++ {
			m.AddNode(core.None{})
		}
	}
}
