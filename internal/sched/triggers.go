package sched

import (
	"fmt"

	"fortio.org/safecast"

	"hdlsched/internal/ir"
)

// TriggerKit is the output of createTriggers: a packed trigger vector, the
// compute/dump functions that populate and print it, and the map from
// original to synthetic SenTrees those trigger bits now stand in for
// (spec.md §4.4).
type TriggerKit struct {
	Name        string
	TriggerVec  *ir.VScope
	ComputeFn   *ir.Function
	DumpFn      *ir.Function
	Map        ir.SenTreeMap
	extraSlots int
	initGuard  *ir.VScope
}

// createTriggerSenTree builds a fresh synthetic single-SenItem SenTree
// sensitive to bit index of the kit's trigger vector being true.
func (k *TriggerKit) createTriggerSenTree(index int) *ir.SenTree {
	return ir.NewTrueSenTree(k.bitExpr(index))
}

func (k *TriggerKit) bitExpr(index int) ir.Expr {
	idx, _ := safecast.Conv[uint64](index)
	return ir.MethodCall(&ir.VarRef{VScope: k.TriggerVec}, "at", &ir.Const{Value: idx, Wd: 32})
}

// addFirstIterationTriggerAssignment splices `triggerVec.at(index) :=
// (counter == 0)` at the head of the compute function (spec.md §4.4).
func (k *TriggerKit) addFirstIterationTriggerAssignment(counter *ir.VScope, index int) {
	lhs := k.bitExpr(index)
	// counter == 0 is encoded as NOT(counter != 0), since Eq is never
	// modeled separately (ir.Expr stays deliberately minimal -- see its
	// doc comment).
	eqZero := ir.Not(ir.Neq(&ir.VarRef{VScope: counter}, &ir.Const{Value: 0, Wd: counter.Type.Width}))
	k.ComputeFn.Prepend(ir.Assign(lhs, eqZero))
}

// addDpiExportTriggerAssignment splices, at the head of the compute
// function, `triggerVec.at(index) := flagVar; flagVar := false`
// (spec.md §4.4).
func (k *TriggerKit) addDpiExportTriggerAssignment(flagVar *ir.VScope, index int) {
	lhs := k.bitExpr(index)
	assignBit := ir.Assign(lhs, &ir.VarRef{VScope: flagVar})
	clearFlag := ir.SetConst(flagVar, 0)
	k.ComputeFn.Prepend(assignBit, clearFlag)
}

// createTriggers allocates a trigger vector for senTrees plus extraSlots
// caller-owned bits, and builds its compute and debug-dump functions
// (spec.md §4.4).
func createTriggers(nl *ir.Netlist, b *SenExprBuilder, senTrees []*ir.SenTree, name string, extraSlots int, slow bool) (*TriggerKit, error) {
	width, err := safecast.Conv[int](extraSlots + len(senTrees))
	if err != nil {
		return nil, fmt.Errorf("createTriggers[%s]: %w", name, err)
	}
	vec := nl.TopScope.NewVar(fmt.Sprintf("__V%sTriggered", name), width, 0)

	kit := &TriggerKit{Name: name, TriggerVec: vec, Map: make(ir.SenTreeMap), extraSlots: extraSlots}
	kit.ComputeFn = makeSubFunction(nl, "_eval_triggers__"+name, slow)
	kit.DumpFn = makeSubFunction(nl, "_dump_triggers__"+name, slow)
	kit.DumpFn.IfDef = "VL_DEBUG"

	if width == 0 {
		kit.DumpFn.AddStmt(ir.Text(`VL_DBG_MSGF("No triggers active\n")`))
	}

	for slot := 0; slot < extraSlots; slot++ {
		kit.DumpFn.AddStmt(dumpTriggerStmt(kit, slot, fmt.Sprintf("caller-owned slot %d", slot)))
	}

	var initAssigns []ir.Stmt
	for i, senTree := range senTrees {
		if !senTree.HasClocked() && !senTree.HasHybrid() {
			return nil, fmt.Errorf("createTriggers[%s]: sentree %d is not clocked or hybrid", name, i)
		}
		index := extraSlots + i
		expr, firedAtInit, err := b.Build(senTree)
		if err != nil {
			return nil, fmt.Errorf("createTriggers[%s]: %w", name, err)
		}
		kit.ComputeFn.AddStmt(ir.Assign(kit.bitExpr(index), expr))

		synthetic := kit.createTriggerSenTree(index)
		kit.Map[senTree] = synthetic

		if firedAtInit {
			initAssigns = append(initAssigns, ir.Assign(kit.bitExpr(index), &ir.Const{Value: 1, Wd: 1}))
		}

		kit.DumpFn.AddStmt(dumpTriggerStmt(kit, index, senTree.String()))
	}

	kit.ComputeFn.AddStmts(b.GetAndClearUpdates()...)

	if len(initAssigns) > 0 {
		guard := nl.TopScope.NewVar(fmt.Sprintf("__V%sDidInit", name), 1, 0)
		kit.initGuard = guard
		// Zero-initialized once in _eval_initial, not re-zeroed on every
		// ComputeFn call -- otherwise the gated init-assignments below would
		// fire every iteration instead of exactly once per simulation.
		b.initFn.AddStmt(ir.SetConst(guard, 0))
		body := append([]ir.Stmt{ir.SetConst(guard, 1)}, initAssigns...)
		kit.ComputeFn.AddStmt(ir.Stmt{Kind: ir.StmtIf, If: ir.IfStmt{
			Cond:     ir.Not(&ir.VarRef{VScope: guard}),
			Then:     body,
			Unlikely: true,
		}})
	}

	// The dump function itself is IfDef-gated on VL_DEBUG; the call site
	// needs no separate guard.
	kit.ComputeFn.AddStmt(ir.Call(kit.DumpFn))

	return kit, nil
}

// dumpTriggerStmt builds `if (triggerVec.at(index)) { VL_DBG_MSGF(...) }`.
func dumpTriggerStmt(kit *TriggerKit, index int, label string) ir.Stmt {
	msg := fmt.Sprintf(`VL_DBG_MSGF("  '%s' region trigger index %d is active: %s\n")`, kit.Name, index, label)
	return ir.Stmt{Kind: ir.StmtIf, If: ir.IfStmt{
		Cond: kit.bitExpr(index),
		Then: []ir.Stmt{ir.Text(msg)},
	}}
}
