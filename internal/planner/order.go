// Package planner is the reference implementation of spec.md §6's
// externally-assumed Order/BreakCycles/Partition/Replicate collaborators.
// It is deliberately a simplification of Verilator's V3Order (out of
// scope per spec.md §1: no multi-threaded scoreboard, no cost-model-based
// task splitting) built on internal/graph's plain dependency graph.
package planner

import (
	"fmt"

	"hdlsched/internal/graph"
	"hdlsched/internal/ir"
	"hdlsched/internal/sched"
)

// activationEntry pairs an activation with the scope it is bucketed
// under, flattened out of one or more LogicByScope sets so graph.Build
// can treat every activation across every logic set as one node space.
type activationEntry struct {
	scope *ir.Scope
	act   *ir.Activation
}

// Order implements sched.Order: it flattens logicSets into one ordered
// node list, builds a dependency graph with an edge from every activation
// writing a variable to every other activation reading it, topologically
// sorts it, and emits one generated function holding the activation
// bodies inline in that order. A read of a variable the same activation
// writes adds no edge, and neither do the reads of a hybrid activation,
// which the caller's fixed-point loop re-runs until stable; any other
// cycle is an error.
func Order(nl *ir.Netlist, logicSets []*ir.LogicByScope, invMap ir.SenTreeMap, tag string, mtasks, settleMode bool, extraTriggersFor sched.ExtraTriggersFunc) (*ir.Function, error) {
	var entries []activationEntry
	for _, logic := range logicSets {
		logic.Foreach(func(s *ir.Scope, a *ir.Activation) {
			entries = append(entries, activationEntry{scope: s, act: a})
		})
	}

	nodes := make([]graph.Node, len(entries))
	for i, e := range entries {
		reads, writes := ir.CollectVarRefs(e.act.Body)
		if orig := invMap[e.act.Sen]; (orig != nil && orig.HasHybrid()) || (e.act.Sen != nil && e.act.Sen.HasHybrid()) {
			reads = nil
		}
		written := make(map[string]bool, len(writes))
		for _, w := range writes {
			written[w] = true
		}
		var deps []string
		for _, r := range reads {
			if !written[r] {
				deps = append(deps, r)
			}
		}
		nodes[i] = graph.Node{ID: i, Reads: deps, Writes: writes}
	}
	g := graph.Build(nodes)
	order, ok := g.TopoSort()
	if !ok {
		return nil, fmt.Errorf("planner.Order[%s]: dependency cycle among %d activations (expected BreakCycles to have removed it)", tag, len(entries))
	}

	fnName := "_order__" + tag
	flags := ir.FuncDontCombine | ir.FuncLoose
	if settleMode {
		flags |= ir.FuncSlow
	}
	f := &ir.Function{Name: fnName, Flags: flags}
	nl.TopScope.AddFunc(f)

	for _, idx := range order {
		e := entries[idx]
		f.AddStmts(e.act.Body...)
		if extraTriggersFor != nil {
			consultExtraTriggers(e.scope, extraTriggersFor)
		}
	}

	// mtasks is accepted but not acted on: task-graph partitioning for
	// the nba region is out of scope (spec.md §1's "we do not specify
	// multi-threaded evaluation beyond reserving it as a flag").
	_ = mtasks
	_ = invMap

	return f, nil
}

// consultExtraTriggers invokes extraTriggersFor for every variable in
// scope, honoring the callback contract (spec.md §6). Since this
// reference Order unconditionally re-runs its whole generated function
// body on every loop iteration rather than conditionally per trigger bit,
// the returned synthetic sentrees need no further wiring here -- a real
// per-statement scoreboard implementation (out of scope, spec.md §1)
// would instead use them to decide which statements must re-run.
func consultExtraTriggers(s *ir.Scope, extraTriggersFor sched.ExtraTriggersFunc) {
	var discard []*ir.SenTree
	for _, v := range s.Vars {
		extraTriggersFor(v, &discard)
	}
}
