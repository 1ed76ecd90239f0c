package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/gresta/core"
)

// Run computes shortest distances from start to every reachable node of
// g, measuring paths with the supplied arithmetic. The weight type
// never needs an "infinity" value: reachability is tracked separately,
// so any type satisfying core.Arith works, including composite costs.
//
// Returns:
//
//   - res: distances, predecessors, and reachability, queried through
//     Result methods. Never nil on a nil error.
//   - err: ErrNilGraph or ErrNilArith on invalid inputs, nil otherwise.
//
// A start at or past g.NodeCount() is not an error: the returned
// Result simply reports every node unreachable.
//
// Edge weights are assumed non-negative under arith.Compare; the
// algorithm does not verify this and produces unspecified distances
// when the assumption is violated.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Run[N, E any](g *core.Graph[N, E], start core.NodeID, arith core.Arith[E], opts ...Option[E]) (*Result[E], error) {
	// 1) Validate inputs before touching any state.
	if g == nil {
		return nil, ErrNilGraph
	}
	if arith == nil {
		return nil, ErrNilArith
	}

	// 2) Build the effective Options from the defaults.
	cfg := DefaultOptions[E]()
	var opt Option[E]
	for _, opt = range opts {
		opt(&cfg)
	}

	// 3) Allocate the result arrays, one slot per node.
	n := g.NodeCount()
	res := &Result[E]{
		start:   start,
		reached: make([]bool, n),
		dist:    make([]E, n),
		prev:    make([]core.NodeID, n),
	}

	// 4) An out-of-range start has no outgoing edges to explore; the
	//    all-unreachable result is already correct.
	if int(start) >= n {
		return res, nil
	}

	// 5) Initialize runner state and execute the main loop. The
	//    finalization array is shared with the result so marking a
	//    node visited is what makes it report reachable.
	r := &runner[N, E]{
		g:       g,
		arith:   arith,
		options: cfg,
		res:     res,
		known:   make([]bool, n),
		visited: res.reached,
		pq:      &nodePQ[E]{arith: arith},
	}
	r.init()
	r.process()

	return res, nil
}

// RunNumeric is Run specialized to built-in numeric weights, wiring in
// core.Numeric so callers skip the arithmetic argument.
func RunNumeric[N any, E core.Number](g *core.Graph[N, E], start core.NodeID, opts ...Option[E]) (*Result[E], error) {
	return Run(g, start, core.Numeric[E]{}, opts...)
}

// runner holds the mutable state for a single Run execution.
type runner[N, E any] struct {
	g       *core.Graph[N, E] // The input graph; read-only within Run.
	arith   core.Arith[E]     // Weight arithmetic for Add and Compare.
	options Options[E]        // Effective configuration for this run.
	res     *Result[E]        // Distances and predecessors being built.
	known   []bool            // known[v]: dist[v] holds a tentative value.
	visited []bool            // visited[v]: dist[v] is finalized. Aliases res.reached.
	pq      *nodePQ[E]        // Min-heap for lazy priority ordering.
}

// init seeds the search: the start node reaches itself at zero cost and
// enters the heap as the first candidate.
func (r *runner[N, E]) init() {
	// 1) The start is its own predecessor, terminating PathTo walks.
	r.known[r.res.start] = true
	r.res.dist[r.res.start] = r.arith.Zero()
	r.res.prev[r.res.start] = r.res.start

	// 2) Push the start with distance zero onto the heap.
	heap.Push(r.pq, &nodeItem[E]{
		id:   r.res.start,
		dist: r.res.dist[r.res.start],
	})
}

// process is the core loop. It repeatedly extracts the node with the
// minimum tentative distance and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance (no node
//     left in the heap can be within the bound).
func (r *runner[N, E]) process() {
	var item *nodeItem[E]
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item = heap.Pop(r.pq).(*nodeItem[E])

		// 2) Skip stale entries superseded by a later improvement.
		if r.visited[item.id] {
			continue
		}

		// 3) Bounded search: the heap is a min-heap, so once one entry
		//    exceeds the limit every remaining entry does too. The node
		//    is not marked visited and stays unreachable.
		if r.options.HasMaxDistance && r.arith.Compare(item.dist, r.options.MaxDistance) > 0 {
			break
		}

		// 4) Mark item.id visited. Its distance is now final.
		r.visited[item.id] = true

		// 5) Relax all outgoing edges from item.id.
		r.relax(item.id)
	}
}

// relax examines each edge outgoing from u and attempts to improve the
// tentative distance of its target. Improvements must be strict under
// arith.Compare, so among equal-cost paths the first one found keeps
// its predecessor and no duplicate heap entry is pushed.
//
// Assumes r.res.dist[u] is finalized before the call.
func (r *runner[N, E]) relax(u core.NodeID) {
	var (
		v    core.NodeID
		w    E
		cand E
	)
	for v, w = range r.g.Neighbors(u) {
		// 1) Candidate distance when v is entered through u.
		cand = r.arith.Add(r.res.dist[u], w)

		// 2) Bounded search: never queue a candidate past the limit.
		if r.options.HasMaxDistance && r.arith.Compare(cand, r.options.MaxDistance) > 0 {
			continue
		}

		// 3) Keep only strict improvements over a known tentative value.
		if r.known[v] && r.arith.Compare(cand, r.res.dist[v]) >= 0 {
			continue
		}

		// 4) Record the improvement and push a fresh heap entry. Old
		//    entries for v remain in the heap and are skipped as stale
		//    when popped.
		r.known[v] = true
		r.res.dist[v] = cand
		r.res.prev[v] = u
		heap.Push(r.pq, &nodeItem[E]{
			id:   v,
			dist: cand,
		})
	}
}

// nodeItem represents a node and its tentative distance from the start.
type nodeItem[W any] struct {
	id   core.NodeID // node index
	dist W           // distance from start when pushed
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending under the
// run's arithmetic. Lazy decrease-key: improvements push new entries,
// outdated ones are ignored when popped (checked via visited).
type nodePQ[W any] struct {
	items []*nodeItem[W]
	arith core.Arith[W]
}

// Len returns the number of items in the heap.
func (pq *nodePQ[W]) Len() int { return len(pq.items) }

// Less defines the comparison: smaller dist, higher priority.
func (pq *nodePQ[W]) Less(i, j int) bool {
	return pq.arith.Compare(pq.items[i].dist, pq.items[j].dist) < 0
}

// Swap swaps two elements in the heap.
func (pq *nodePQ[W]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ[W]) Push(x any) { pq.items = append(pq.items, x.(*nodeItem[W])) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *nodePQ[W]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]

	return item
}
