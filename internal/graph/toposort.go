package graph

// TopoSort returns a total order of g's node indices respecting every
// edge (Kahn's algorithm), breaking ties by ascending index so ordering
// is deterministic and falls back to source order when nothing
// constrains it. Returns false if g contains a cycle.
func (g *Graph) TopoSort() ([]int, bool) {
	indeg := make([]int, len(g.Nodes))
	for _, outs := range g.Edges {
		for _, to := range outs {
			indeg[to]++
		}
	}

	ready := make([]int, 0, len(g.Nodes))
	for i, d := range indeg {
		if d == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, len(g.Nodes))
	for len(ready) > 0 {
		// Pick the smallest-index ready node for a deterministic,
		// source-order-biased result.
		minPos := 0
		for i := 1; i < len(ready); i++ {
			if ready[i] < ready[minPos] {
				minPos = i
			}
		}
		n := ready[minPos]
		ready = append(ready[:minPos], ready[minPos+1:]...)
		order = append(order, n)

		for _, to := range g.Edges[n] {
			indeg[to]--
			if indeg[to] == 0 {
				ready = append(ready, to)
			}
		}
	}

	return order, len(order) == len(g.Nodes)
}
