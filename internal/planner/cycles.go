package planner

import (
	"hdlsched/internal/graph"
	"hdlsched/internal/ir"
)

// BreakCycles implements sched.BreakCycles: it runs SCC detection over
// comb's dependency graph and reclassifies every activation touched by a
// non-trivial SCC (or a self-dependency) as hybrid, removing it from comb
// in place. Grounded on the cyclic-dependency-reclassify framing in
// other_examples/signadot-tony-format__cycle_detector.go and
// other_examples/jeredw-eniacsim__cycle.go.
func BreakCycles(nl *ir.Netlist, comb *ir.LogicByScope) (*ir.LogicByScope, error) {
	type entry struct {
		scope *ir.Scope
		act   *ir.Activation
	}
	var entries []entry
	comb.Foreach(func(s *ir.Scope, a *ir.Activation) {
		entries = append(entries, entry{scope: s, act: a})
	})

	nodes := make([]graph.Node, len(entries))
	for i, e := range entries {
		reads, writes := ir.CollectVarRefs(e.act.Body)
		nodes[i] = graph.Node{ID: i, Reads: reads, Writes: writes}
	}
	g := graph.Build(nodes)
	comps := g.SCCs()

	cyclic := make(map[int]bool)
	for _, comp := range comps {
		if len(comp) > 1 {
			for _, i := range comp {
				cyclic[i] = true
			}
			continue
		}
		if len(comp) == 1 && g.HasSelfEdge(comp[0]) {
			cyclic[comp[0]] = true
		}
	}

	hybrid := ir.NewLogicByScope()
	kept := ir.NewLogicByScope()
	for i, e := range entries {
		if cyclic[i] {
			hybridSen := &ir.SenTree{Kind: ir.SenHybrid, Items: hybridItemsFrom(e.act.Sen)}
			hybrid.Add(e.scope, &ir.Activation{Sen: hybridSen, Body: e.act.Body, Procedure: e.act.Procedure})
			continue
		}
		kept.Add(e.scope, e.act)
	}

	*comb = *kept
	return hybrid, nil
}

// hybridItemsFrom reclassifies a combinational SenTree's single item as a
// hybrid-edge term, preserving its sensed expression (spec.md's hybrid
// definition: "change-term on a wider signal used within an otherwise
// clocked-style tree introduced by cycle breaking").
func hybridItemsFrom(orig *ir.SenTree) []*ir.SenItem {
	if orig == nil || len(orig.Items) == 0 {
		return nil
	}
	sensed := orig.Items[0].Sensed
	return []*ir.SenItem{{Edge: ir.EdgeHybrid, Sensed: sensed}}
}
