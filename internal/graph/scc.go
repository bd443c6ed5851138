package graph

// SCCs returns g's strongly connected components via Tarjan's algorithm,
// in reverse topological order. A component of size 1 whose node has no
// self-edge is not a cycle; callers that only care about genuine cycles
// should filter with HasSelfEdge/len(comp) > 1.
func (g *Graph) SCCs() [][]int {
	t := &tarjan{
		g:       g,
		index:   make([]int, len(g.Nodes)),
		low:     make([]int, len(g.Nodes)),
		onStack: make([]bool, len(g.Nodes)),
		visited: make([]bool, len(g.Nodes)),
	}
	for i := range g.Nodes {
		if !t.visited[i] {
			t.strongConnect(i)
		}
	}
	return t.comps
}

// HasSelfEdge reports whether node i depends directly on itself.
func (g *Graph) HasSelfEdge(i int) bool {
	for _, to := range g.Edges[i] {
		if to == i {
			return true
		}
	}
	return false
}

type tarjan struct {
	g       *Graph
	index   []int
	low     []int
	onStack []bool
	visited []bool
	next    int
	stack   []int
	comps   [][]int
}

func (t *tarjan) strongConnect(v int) {
	t.index[v] = t.next
	t.low[v] = t.next
	t.next++
	t.visited[v] = true
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.g.Edges[v] {
		if !t.visited[w] {
			t.strongConnect(w)
			if t.low[w] < t.low[v] {
				t.low[v] = t.low[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.low[v] {
				t.low[v] = t.index[w]
			}
		}
	}

	if t.low[v] == t.index[v] {
		var comp []int
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		t.comps = append(t.comps, comp)
	}
}
