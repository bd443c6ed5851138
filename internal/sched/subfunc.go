package sched

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"hdlsched/internal/ir"
)

// makeSubFunction allocates a new, non-entry-point function installed as
// an active child of the top scope (spec.md §4.2).
func makeSubFunction(nl *ir.Netlist, name string, slow bool) *ir.Function {
	flags := ir.FuncDontCombine | ir.FuncLoose
	if slow {
		flags |= ir.FuncSlow
	}
	f := &ir.Function{Name: name, Flags: flags}
	nl.TopScope.AddFunc(f)
	return f
}

// makeTopFunction is makeSubFunction plus the entry-point flag, used for
// the handful of top-level functions code outside this pass calls
// directly (_eval, _eval_initial, _eval_static, _eval_final, _eval_settle).
func makeTopFunction(nl *ir.Netlist, name string, slow bool) *ir.Function {
	f := makeSubFunction(nl, name, slow)
	f.Flags |= ir.FuncEntryPoint
	return f
}

// orderSequentially groups the activations of logic by scope and, for
// each distinct scope, creates one sub-function named
// "<func.Name>__<scope.DotlessName()>", calls it from func, and moves
// each activation's statements into it in source order (spec.md §4.2).
// This is the fallback sequential composer used where no dependency
// ordering is required; region builders that need data-dependency order
// call the Order collaborator instead.
func orderSequentially(nl *ir.Netlist, f *ir.Function, logic *ir.LogicByScope) {
	for _, s := range logic.Scopes() {
		acts := logic.Activations(s)
		if len(acts) == 0 {
			continue
		}
		sub := makeSubFunction(nl, f.Name+"__"+s.DotlessName(), f.IsSlow())
		for _, a := range acts {
			// Procedure-node activations already hold only the inner
			// procedure body in a.Body (see ir.Activation.Procedure doc);
			// there is no wrapper node here to strip.
			sub.AddStmts(a.Body...)
		}
		f.AddStmt(ir.Call(sub))
	}
}

// splitCheck partitions f's direct statement list into threshold-sized
// "<f.Name>__0", "<f.Name>__1", ... sub-functions when threshold is
// positive and f's statement count exceeds it, replacing f's body with
// calls to the new sub-functions in order (spec.md §4.2). A threshold of
// zero, or a body at or under it, is a no-op.
func splitCheck(nl *ir.Netlist, f *ir.Function, threshold int) error {
	if threshold <= 0 {
		return nil
	}
	if ir.StmtCount(f.Body) <= threshold {
		return nil
	}
	if len(f.Body) == 0 {
		return errors.New("splitCheck: function over threshold but has no statements")
	}

	var chunks [][]ir.Stmt
	cur := make([]ir.Stmt, 0, threshold)
	curCount := 0
	for _, s := range f.Body {
		cost := ir.StmtCount([]ir.Stmt{s})
		if curCount > 0 && curCount+cost > threshold {
			chunks = append(chunks, cur)
			cur = nil
			curCount = 0
		}
		cur = append(cur, s)
		curCount += cost
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}

	newBody := make([]ir.Stmt, 0, len(chunks))
	for i, chunk := range chunks {
		idx, err := safecast.Conv[uint32](i)
		if err != nil {
			return fmt.Errorf("splitCheck: %w", err)
		}
		sub := makeSubFunction(nl, fmt.Sprintf("%s__%d", f.Name, idx), f.IsSlow())
		sub.AddStmts(chunk...)
		newBody = append(newBody, ir.Call(sub))
	}
	f.Body = newBody
	return nil
}
