package sched

import "hdlsched/internal/ir"

// createEval assembles the top-level `_eval` function (spec.md §4.8):
// the ico loop (if any), then a nested active/NBA evaluation structure
// whose NBA trigger phase re-runs the active loop to quiescence before
// testing for further NBA work, so that NBA-driven active-region effects
// are fully flushed before NBA re-evaluates.
func createEval(
	nl *ir.Netlist,
	actKit *TriggerKit,
	nbaTrigVec *ir.VScope,
	preTrigVec *ir.VScope,
	actFn, nbaFn *ir.Function,
	icoLoop *EvalLoop,
	opts Options,
) (*ir.Function, *ir.Function, error) {
	evalFn := makeTopFunction(nl, "_eval", false)

	if icoLoop != nil {
		evalFn.AddStmts(icoLoop.Stmts...)
	}

	nbaDumpFn := cloneDumpFnForNBA(nl, actKit, nbaTrigVec)

	activeLoop := makeEvalLoop(nl.TopScope, "act", "act", actKit.TriggerVec, actKit.DumpFn, opts.ConvergeLimit,
		func() []ir.Stmt { return []ir.Stmt{ir.Call(actKit.ComputeFn)} },
		func() []ir.Stmt {
			return []ir.Stmt{
				// preTrig := actTrig AND NOT nbaTrig
				ir.MethodCallStatement(&ir.VarRef{VScope: preTrigVec}, "andNot",
					&ir.VarRef{VScope: actKit.TriggerVec}, &ir.VarRef{VScope: nbaTrigVec}),
				// nbaTrig := nbaTrig OR actTrig
				ir.MethodCallStatement(&ir.VarRef{VScope: nbaTrigVec}, "set",
					&ir.VarRef{VScope: actKit.TriggerVec}),
				ir.Call(actFn),
			}
		},
	)

	nbaLoop := makeEvalLoop(nl.TopScope, "nba", "nba", nbaTrigVec, nbaDumpFn, opts.ConvergeLimit,
		func() []ir.Stmt {
			return append(
				[]ir.Stmt{ir.MethodCallStatement(&ir.VarRef{VScope: nbaTrigVec}, "clear")},
				activeLoop.Stmts...,
			)
		},
		func() []ir.Stmt { return []ir.Stmt{ir.Call(nbaFn)} },
	)

	evalFn.AddStmts(nbaLoop.Stmts...)
	return evalFn, nbaDumpFn, nil
}

// cloneDumpFnForNBA derives `_dump_triggers__nba` from the act TriggerKit's
// dump function by rewriting every read of the act trigger vector to read
// nbaTrigVec, and replacing "act" with "nba" in message strings (spec.md
// §4.8 step 2). The original act dump function asserts it only ever reads
// actKit.TriggerVec, never writes it.
func cloneDumpFnForNBA(nl *ir.Netlist, actKit *TriggerKit, nbaTrigVec *ir.VScope) *ir.Function {
	f := &ir.Function{
		Name:  "_dump_triggers__nba",
		Flags: actKit.DumpFn.Flags,
		IfDef: actKit.DumpFn.IfDef,
		Body:  ir.RewriteVarRefInStmts(actKit.DumpFn.Body, actKit.TriggerVec, nbaTrigVec, "act", "nba"),
	}
	nl.TopScope.AddFunc(f)
	return f
}
