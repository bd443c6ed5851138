package sched

import "hdlsched/internal/ir"

// createInputCombLoop builds the input-combinational stabilization loop
// (spec.md §4.6). Returns (nil, nil) when icoLogic is empty -- there is
// nothing for the orchestrator to splice into _eval.
func createInputCombLoop(nl *ir.Netlist, b *SenExprBuilder, icoLogic *ir.LogicByScope, dpiExportTrigger *ir.VScope, collab Collaborators, opts Options) (*EvalLoop, error) {
	if icoLogic.Empty() {
		return nil, nil
	}

	if opts.SystemC {
		markScSensitive(nl, icoLogic)
	}

	extraSlots := 1 // slot 0: first iteration
	if dpiExportTrigger != nil {
		extraSlots = 2 // slot 1: dpi export
	}

	senTrees := ir.CollectTriggerSenTrees(icoLogic)
	kit, err := createTriggers(nl, b, senTrees, "ico", extraSlots, false)
	if err != nil {
		return nil, err
	}

	if dpiExportTrigger != nil {
		kit.addDpiExportTriggerAssignment(dpiExportTrigger, 1)
	}

	remapped := remapSensitivities(icoLogic, kit.Map)
	invMap, err := ir.InvertSenMap(kit.Map)
	if err != nil {
		return nil, err
	}

	inputChanged := kit.createTriggerSenTree(0)
	var dpiExportTriggered *ir.SenTree
	if dpiExportTrigger != nil {
		dpiExportTriggered = kit.createTriggerSenTree(1)
	}
	extraTriggersFor := func(v *ir.VScope, out *[]*ir.SenTree) {
		if v.IsTopLevelInput() {
			*out = append(*out, inputChanged)
		}
		if v.Flags.Has(ir.VarWrittenByDPI) && dpiExportTriggered != nil {
			*out = append(*out, dpiExportTriggered)
		}
	}

	orderedFn, err := collab.Order(nl, []*ir.LogicByScope{remapped}, invMap, "ico", false, false, extraTriggersFor)
	if err != nil {
		return nil, err
	}

	loop := makeEvalLoop(nl.TopScope, "ico", "ico", kit.TriggerVec, kit.DumpFn, opts.ConvergeLimit,
		func() []ir.Stmt { return []ir.Stmt{ir.Call(kit.ComputeFn)} },
		func() []ir.Stmt { return []ir.Stmt{ir.Call(orderedFn)} },
	)
	kit.addFirstIterationTriggerAssignment(loop.IterCounter, 0)

	return loop, nil
}

// markScSensitive flags every top-level non-output input read by ico
// logic as sc-sensitive, for SystemC code emission (spec.md §4.6 step 2).
// The read set is collected with ir.CollectVarRefs over every ico
// activation body.
func markScSensitive(nl *ir.Netlist, icoLogic *ir.LogicByScope) {
	read := make(map[string]bool)
	icoLogic.Foreach(func(_ *ir.Scope, a *ir.Activation) {
		reads, _ := ir.CollectVarRefs(a.Body)
		for _, r := range reads {
			read[r] = true
		}
	})
	for _, v := range nl.AllVars() {
		if v.IsTopLevelInput() && read[(&ir.VarRef{VScope: v}).Key()] {
			v.Flags |= ir.VarScSensitive
		}
	}
}
