package graph

// Graph is a directed graph over module handles of type H. Nodes and edges
// are both deduplicated: adding the same node or edge twice is a no-op the
// second time (spec §4.5 "add_node(n) is idempotent; add_edge(a,b) is
// idempotent and creates nodes on demand").
type Graph[H comparable] struct {
	index   map[H]int
	handles []H
	adj     [][]int
	adjSeen []map[int]struct{}
}

// New returns an empty Graph.
func New[H comparable]() *Graph[H] {
	return &Graph[H]{index: make(map[H]int)}
}

// AddNode registers h if it isn't already present and returns its internal
// index. Safe to call repeatedly with the same handle.
func (g *Graph[H]) AddNode(h H) int {
	if i, ok := g.index[h]; ok {
		return i
	}
	i := len(g.handles)
	g.index[h] = i
	g.handles = append(g.handles, h)
	g.adj = append(g.adj, nil)
	g.adjSeen = append(g.adjSeen, make(map[int]struct{}))
	return i
}

// AddEdge records that from depends on to, creating either node on demand.
// Adding the same (from, to) pair again is a no-op.
func (g *Graph[H]) AddEdge(from, to H) {
	fi := g.AddNode(from)
	ti := g.AddNode(to)
	if _, dup := g.adjSeen[fi][ti]; dup {
		return
	}
	g.adjSeen[fi][ti] = struct{}{}
	g.adj[fi] = append(g.adj[fi], ti)
}

// Len returns the number of distinct nodes registered.
func (g *Graph[H]) Len() int { return len(g.handles) }

// Has reports whether h has been registered as a node.
func (g *Graph[H]) Has(h H) bool {
	_, ok := g.index[h]
	return ok
}

// Cycle reports a back edge discovered while computing a topological order
// (spec §4.5, §8 property 9). From is the in-progress ancestor that To's
// outgoing edge revisits: a path From ⇝ To exists along the DFS stack, and
// To → From is the edge that closes the cycle.
type Cycle[H comparable] struct {
	From H
	To   H
}

const (
	stateUnvisited uint8 = iota
	stateInProgress
	stateResolved
)

// OrderedElements runs the depth-first resolved/in-progress traversal of
// spec §4.5. On success it returns every registered handle ordered so that
// a dependency always precedes its dependent (equivalently: for every edge
// a→b, b's index is ≤ a's index — spec §8 property 9). On the first cycle
// encountered it returns (nil, cycle) instead.
//
// Traversal order among independent roots, and among a node's edges, is by
// ascending insertion (registration) order, so the result is deterministic
// for a given sequence of AddNode/AddEdge calls.
func (g *Graph[H]) OrderedElements() ([]H, *Cycle[H]) {
	state := make([]uint8, len(g.handles))
	order := make([]H, 0, len(g.handles))

	var cyc *Cycle[H]
	var visit func(n int) bool // false once a cycle has been found
	visit = func(n int) bool {
		state[n] = stateInProgress
		for _, m := range g.adj[n] {
			switch state[m] {
			case stateUnvisited:
				if !visit(m) {
					return false
				}
			case stateInProgress:
				cyc = &Cycle[H]{From: g.handles[m], To: g.handles[n]}
				return false
			case stateResolved:
				// already ordered; nothing to do
			}
		}
		state[n] = stateResolved
		order = append(order, g.handles[n])
		return true
	}

	for i := range g.handles {
		if state[i] == stateUnvisited {
			if !visit(i) {
				return nil, cyc
			}
		}
	}
	return order, nil
}
