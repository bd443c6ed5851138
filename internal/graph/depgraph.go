// Package graph provides a small generic dependency graph -- adjacency
// lists keyed by an opaque node id, Kahn topological layering and Tarjan
// SCC detection -- used by internal/planner's reference Order/BreakCycles
// implementations. Grounded on the dependency-map-keyed-by-resource
// approach in other_examples/badochov-studies-EPFL__schedule.go
// (`dependency.localDeps map[reg]int`), generalized from registers to
// arbitrary string keys.
package graph

// Node is an opaque piece of scheduled work: an id plus the set of
// resource keys it reads and writes.
type Node struct {
	ID    int
	Reads []string
	Writes []string
}

// Graph is a dependency graph over a fixed set of nodes, built from every
// writer-to-reader relationship on a shared resource key.
type Graph struct {
	Nodes []Node
	// Edges[i] lists the indices of nodes that depend on node i and must
	// run after it.
	Edges [][]int
}

// Build constructs a Graph from nodes: for every resource key some node
// writes and another reads, an edge is added from writer to reader,
// regardless of their position in nodes (a reader occurring earlier in the
// slice than its writer still gets the edge -- this is what lets SCCs
// later recognize a genuine two-node feedback loop, where each node both
// reads what the other writes). A node that reads a key it also writes
// itself gets a self edge.
func Build(nodes []Node) *Graph {
	g := &Graph{Nodes: nodes, Edges: make([][]int, len(nodes))}
	writers := make(map[string][]int)
	for i, n := range nodes {
		for _, w := range n.Writes {
			writers[w] = append(writers[w], i)
		}
	}

	seen := make(map[[2]int]bool)
	addEdge := func(from, to int) {
		if seen[[2]int{from, to}] {
			return
		}
		seen[[2]int{from, to}] = true
		g.Edges[from] = append(g.Edges[from], to)
	}

	for i, n := range nodes {
		writesHere := make(map[string]bool, len(n.Writes))
		for _, w := range n.Writes {
			writesHere[w] = true
		}
		for _, r := range n.Reads {
			if writesHere[r] {
				addEdge(i, i)
			}
			for _, w := range writers[r] {
				if w != i {
					addEdge(w, i)
				}
			}
		}
	}
	return g
}

// Predecessors returns, for each node, the set of node indices with an
// edge into it (the reverse adjacency), used by Kahn's algorithm.
func (g *Graph) Predecessors() [][]int {
	preds := make([][]int, len(g.Nodes))
	for from, outs := range g.Edges {
		for _, to := range outs {
			preds[to] = append(preds[to], from)
		}
	}
	return preds
}
