package sched

import "hdlsched/internal/ir"

// createSettle builds the fixed-point evaluation of combinational plus
// hybrid logic that restores the combinational invariant (spec.md §4.6).
// It deep-clones classes.Comb and classes.Hybrid first, since their
// original statements still belong to the act/nba regions built later;
// the settle loop gets its own copy to order and trigger independently.
// Returns nil with no error if both are empty.
func createSettle(nl *ir.Netlist, b *SenExprBuilder, classes *ir.LogicClasses, collab Collaborators, opts Options) (*ir.Function, error) {
	comb := cloneLogicByScope(classes.Comb)
	hybrid := cloneLogicByScope(classes.Hybrid)
	if comb.Empty() && hybrid.Empty() {
		return nil, nil
	}

	const extraSlots = 1 // slot 0: first iteration ("inputChanged")
	senTrees := ir.CollectTriggerSenTrees(hybrid)
	// comb activations are SenCombinational, never clocked/hybrid, so
	// CollectTriggerSenTrees never picks any of their trees up; only
	// hybrid contributes trigger sensitivities here.

	kit, err := createTriggers(nl, b, senTrees, "stl", extraSlots, true)
	if err != nil {
		return nil, err
	}

	hybridRemapped := remapSensitivities(hybrid, kit.Map)

	invMap, err := ir.InvertSenMap(kit.Map)
	if err != nil {
		return nil, err
	}

	inputChanged := kit.createTriggerSenTree(0)
	extraTriggersFor := func(v *ir.VScope, out *[]*ir.SenTree) {
		*out = append(*out, inputChanged)
	}

	orderedFn, err := collab.Order(nl, []*ir.LogicByScope{comb, hybridRemapped}, invMap, "stl", false, true, extraTriggersFor)
	if err != nil {
		return nil, err
	}

	loop := makeEvalLoop(nl.TopScope, "stl", "settle", kit.TriggerVec, kit.DumpFn, opts.ConvergeLimit,
		func() []ir.Stmt { return []ir.Stmt{ir.Call(kit.ComputeFn)} },
		func() []ir.Stmt { return []ir.Stmt{ir.Call(orderedFn)} },
	)

	kit.addFirstIterationTriggerAssignment(loop.IterCounter, 0)

	f := makeTopFunction(nl, "_eval_settle", true)
	f.AddStmts(loop.Stmts...)
	return f, nil
}

func cloneLogicByScope(l *ir.LogicByScope) *ir.LogicByScope {
	out := ir.NewLogicByScope()
	l.Foreach(func(s *ir.Scope, a *ir.Activation) { out.Add(s, a.Clone()) })
	return out
}
