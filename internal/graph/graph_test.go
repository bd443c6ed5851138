package graph_test

import (
	"testing"

	"hdlsched/internal/graph"
)

func TestBuild_EdgeFromLastWriterToReader(t *testing.T) {
	nodes := []graph.Node{
		{ID: 0, Writes: []string{"a"}},
		{ID: 1, Reads: []string{"a"}, Writes: []string{"b"}},
		{ID: 2, Reads: []string{"b"}},
	}
	g := graph.Build(nodes)

	if len(g.Edges[0]) != 1 || g.Edges[0][0] != 1 {
		t.Errorf("expected node 0 -> node 1, got %v", g.Edges[0])
	}
	if len(g.Edges[1]) != 1 || g.Edges[1][0] != 2 {
		t.Errorf("expected node 1 -> node 2, got %v", g.Edges[1])
	}
}

func TestTopoSort_LinearChain(t *testing.T) {
	nodes := []graph.Node{
		{ID: 0, Writes: []string{"a"}},
		{ID: 1, Reads: []string{"a"}, Writes: []string{"b"}},
		{ID: 2, Reads: []string{"b"}},
	}
	g := graph.Build(nodes)
	order, ok := g.TopoSort()
	if !ok {
		t.Fatal("expected acyclic graph to sort successfully")
	}
	want := []int{0, 1, 2}
	for i, n := range want {
		if order[i] != n {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestTopoSort_DetectsCycle(t *testing.T) {
	nodes := []graph.Node{
		{ID: 0, Reads: []string{"b"}, Writes: []string{"a"}},
		{ID: 1, Reads: []string{"a"}, Writes: []string{"b"}},
	}
	g := graph.Build(nodes)
	_, ok := g.TopoSort()
	if ok {
		t.Error("expected a 2-node mutual dependency to be reported as a cycle")
	}
}

func TestTopoSort_BreaksTiesByAscendingIndex(t *testing.T) {
	nodes := []graph.Node{{ID: 0}, {ID: 1}, {ID: 2}}
	g := graph.Build(nodes)
	order, ok := g.TopoSort()
	if !ok {
		t.Fatal("expected success")
	}
	want := []int{0, 1, 2}
	for i, n := range want {
		if order[i] != n {
			t.Errorf("order = %v, want %v (source order with no constraints)", order, want)
			break
		}
	}
}

func TestSCCs_FindsMutualDependency(t *testing.T) {
	nodes := []graph.Node{
		{ID: 0, Reads: []string{"b"}, Writes: []string{"a"}},
		{ID: 1, Reads: []string{"a"}, Writes: []string{"b"}},
	}
	g := graph.Build(nodes)
	comps := g.SCCs()

	found := false
	for _, c := range comps {
		if len(c) == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a 2-node SCC among %v", comps)
	}
}

func TestSCCs_AcyclicGraphIsAllSingletons(t *testing.T) {
	nodes := []graph.Node{
		{ID: 0, Writes: []string{"a"}},
		{ID: 1, Reads: []string{"a"}},
	}
	g := graph.Build(nodes)
	comps := g.SCCs()
	for _, c := range comps {
		if len(c) > 1 {
			t.Errorf("expected no multi-node SCC in an acyclic graph, got %v", comps)
		}
	}
}

func TestHasSelfEdge(t *testing.T) {
	g := &graph.Graph{Nodes: make([]graph.Node, 2), Edges: [][]int{{0}, {}}}
	if !g.HasSelfEdge(0) {
		t.Error("expected node 0 to have a self edge")
	}
	if g.HasSelfEdge(1) {
		t.Error("expected node 1 to have no self edge")
	}
}
