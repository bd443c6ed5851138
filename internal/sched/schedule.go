// Package sched's schedule.go is the top-level orchestrator: the
// imperative, linear narrative spec.md §4.7 calls `schedule(netlist)`.
// Each numbered step below corresponds to a numbered step in that
// section so the two can be cross-checked (spec.md §9's
// builder/orchestrator-split design note).
package sched

import (
	"fmt"

	"hdlsched/internal/ir"
	"hdlsched/internal/observ"
)

// Result is everything Schedule produces: the generated entry points plus
// the stage-timing report if Options.Stats was set.
type Result struct {
	Eval        *ir.Function
	EvalInitial *ir.Function
	EvalStatic  *ir.Function
	EvalFinal   *ir.Function
	EvalSettle  *ir.Function
	Timing      observ.Report
}

// Schedule runs the full scheduling pipeline over nl, mutating it in
// place and returning the generated top-level entry points (spec.md
// §4.7).
func Schedule(nl *ir.Netlist, collab Collaborators, opts Options) (*Result, error) {
	timer := observ.NewTimer()
	stage := func(name string) func(note string) {
		idx := timer.Begin(name)
		return func(note string) { timer.End(idx, note) }
	}

	// 1. Classify logic.
	end := stage("sched-gather")
	var classifier Classifier
	classes, err := classifier.GatherLogicClasses(nl)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	end(fmt.Sprintf("static=%d initial=%d final=%d comb=%d clocked=%d",
		sizeOf(classes.Static), sizeOf(classes.Initial), sizeOf(classes.Final), sizeOf(classes.Comb), sizeOf(classes.Clocked)))

	// 2. Emit static, initial, final top functions.
	end = stage("sched-static")
	staticFn, err := createStatic(nl, classes, opts)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	end("")

	end = stage("sched-initial")
	initialFn := createInitial(nl, classes)
	end("")

	end = stage("sched-final")
	finalFn, err := createFinal(nl, classes, opts)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	end("")

	// 3. Break cycles: reclassify part of comb as hybrid, in place.
	end = stage("sched-break-cycles")
	hybrid, err := collab.BreakCycles(nl, classes.Comb)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	classes.Hybrid = hybrid
	end(fmt.Sprintf("hybrid=%d comb=%d", sizeOf(classes.Hybrid), sizeOf(classes.Comb)))

	// 4. One shared SenExprBuilder bound to the initial function, so its
	// prev-value initializers run in _eval_initial.
	senBuilder := NewSenExprBuilder(initialFn)

	// 5. Build settle loop.
	end = stage("sched-settle")
	settleFn, err := createSettle(nl, senBuilder, classes, collab, opts)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	end("")

	// 6. Partition (clocked, comb, hybrid) -> (pre, act, nba).
	end = stage("sched-partition")
	regions, err := collab.Partition(classes.Clocked, classes.Comb, classes.Hybrid)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	end(fmt.Sprintf("pre=%d act=%d nba=%d", sizeOf(regions.Pre), sizeOf(regions.Act), sizeOf(regions.NBA)))

	// 7. Replicate (pre, act, nba) -> (ico, act', nba').
	end = stage("sched-replicate")
	icoLogic, actLogic, nbaLogic, err := collab.Replicate(regions)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	end(fmt.Sprintf("ico=%d act=%d nba=%d", sizeOf(icoLogic), sizeOf(actLogic), sizeOf(nbaLogic)))

	// 8. Build ico loop.
	end = stage("sched-create-ico")
	icoLoop, err := createInputCombLoop(nl, senBuilder, icoLogic, nl.DPIExportTrigger, collab, opts)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	end("")

	// 9. Build act TriggerKit over sensitivities of pre ∪ act ∪ nba;
	// reserve one extra slot iff a DPI export trigger exists.
	end = stage("sched-create-triggers")
	extraSlots := 0
	if nl.DPIExportTrigger != nil {
		extraSlots = 1
	}
	allActSenTrees := dedupeSenTrees(
		ir.CollectTriggerSenTrees(regions.Pre),
		ir.CollectTriggerSenTrees(actLogic),
		ir.CollectTriggerSenTrees(nbaLogic),
	)
	actKit, err := createTriggers(nl, senBuilder, allActSenTrees, "act", extraSlots, false)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	if nl.DPIExportTrigger != nil {
		actKit.addDpiExportTriggerAssignment(nl.DPIExportTrigger, 0)
	}
	end(fmt.Sprintf("width=%d", actKit.TriggerVec.Type.Width))

	// 10. Allocate __VpreTriggered and __VnbaTriggered as distinct
	// TriggerVec variables with the same width as the act vector, and
	// derive preTrigMap/nbaTrigMap by rewriting every trigger-vector
	// reference in the cloned synthetic sentrees.
	preTrigVec := nl.TopScope.NewVar("__VpreTriggered", actKit.TriggerVec.Type.Width, 0)
	nbaTrigVec := nl.TopScope.NewVar("__VnbaTriggered", actKit.TriggerVec.Type.Width, 0)
	preTrigMap := rewriteSenTreeMapVec(actKit.Map, actKit.TriggerVec, preTrigVec)
	nbaTrigMap := rewriteSenTreeMapVec(actKit.Map, actKit.TriggerVec, nbaTrigVec)

	// 11. Remap sensitivities: pre -> preMap; act -> actMap.
	preRemapped := remapSensitivities(regions.Pre, preTrigMap)
	actRemapped := remapSensitivities(actLogic, actKit.Map)

	// 12. Order the act region (pre ∪ act) with the combined inverse map;
	// DPI-written variables additionally trigger dpiExportTriggered.
	end = stage("sched-create-act")
	preInv, err := ir.InvertSenMap(preTrigMap)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	actInv, err := ir.InvertSenMap(actKit.Map)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	combinedInv := mergeSenTreeMaps(preInv, actInv)
	var dpiExportTriggered *ir.SenTree
	if nl.DPIExportTrigger != nil {
		dpiExportTriggered = actKit.createTriggerSenTree(0)
	}
	extraTriggersForDpi := func(v *ir.VScope, out *[]*ir.SenTree) {
		if v.Flags.Has(ir.VarWrittenByDPI) && dpiExportTriggered != nil {
			*out = append(*out, dpiExportTriggered)
		}
	}
	actFn, err := collab.Order(nl, []*ir.LogicByScope{preRemapped, actRemapped}, combinedInv, "act", false, false, extraTriggersForDpi)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	if err := splitCheck(nl, actFn, opts.OutputSplitCFuncs); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	end("")

	// 13. Remap nba via nbaMap. Order nba; mtasks permitted only here.
	// DPI-written variables trigger dpiExportTriggered here too, reusing the
	// callback hoisted for the act pass in step 12.
	end = stage("sched-create-nba")
	nbaRemapped := remapSensitivities(nbaLogic, nbaTrigMap)
	nbaInv, err := ir.InvertSenMap(nbaTrigMap)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	nbaFn, err := collab.Order(nl, []*ir.LogicByScope{nbaRemapped}, nbaInv, "nba", opts.Mtasks, false, extraTriggersForDpi)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	if err := splitCheck(nl, nbaFn, opts.OutputSplitCFuncs); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	end("")

	// 14. Assemble _eval.
	evalFn, _, err := createEval(nl, actKit, nbaTrigVec, preTrigVec, actFn, nbaFn, icoLoop, opts)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	if err := splitCheck(nl, initialFn, opts.OutputSplitCFuncs); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	// 15. Clear the DPI export trigger reference; it has been fully
	// threaded into the generated triggers and is no longer needed.
	nl.DPIExportTrigger = nil

	nl.Eval = evalFn
	nl.EvalNBA = nbaFn

	result := &Result{
		Eval:        evalFn,
		EvalInitial: initialFn,
		EvalStatic:  staticFn,
		EvalFinal:   finalFn,
		EvalSettle:  settleFn,
	}
	if opts.Stats {
		result.Timing = timer.Report()
	}
	return result, nil
}

func sizeOf(l *ir.LogicByScope) int {
	n := 0
	l.Foreach(func(*ir.Scope, *ir.Activation) { n++ })
	return n
}

// dedupeSenTrees concatenates several already-deduped sentree slices and
// removes cross-slice duplicates, preserving first-seen order.
func dedupeSenTrees(groups ...[]*ir.SenTree) []*ir.SenTree {
	seen := make(map[*ir.SenTree]bool)
	var out []*ir.SenTree
	for _, g := range groups {
		for _, t := range g {
			if seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
