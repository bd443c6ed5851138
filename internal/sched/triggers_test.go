package sched

import (
	"testing"

	"hdlsched/internal/ir"
)

func TestCreateTriggers_AllocatesOneBitPerSenTreePlusExtraSlots(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	nl := ir.NewNetlist("TOP")
	nl.TopScope = top
	clk := top.NewVar("clk", 1, 0)
	initFn := &ir.Function{Name: "_eval_initial", Scope: top}
	b := NewSenExprBuilder(initFn)

	sen := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{{Edge: ir.EdgePosedge, Sensed: &ir.VarRef{VScope: clk}}}}
	kit, err := createTriggers(nl, b, []*ir.SenTree{sen}, "act", 1, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kit.TriggerVec.Type.Width != 2 {
		t.Errorf("expected width 2 (1 extra slot + 1 sentree), got %d", kit.TriggerVec.Type.Width)
	}
	if len(kit.Map) != 1 {
		t.Errorf("expected one original->synthetic sentree mapping, got %d", len(kit.Map))
	}
}

func TestCreateTriggers_RejectsNonClockedNonHybridSenTree(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	nl := ir.NewNetlist("TOP")
	nl.TopScope = top
	v := top.NewVar("v", 1, 0)
	initFn := &ir.Function{Name: "_eval_initial", Scope: top}
	b := NewSenExprBuilder(initFn)

	sen := &ir.SenTree{Kind: ir.SenCombinational, Items: []*ir.SenItem{{Edge: ir.EdgeChanged, Sensed: &ir.VarRef{VScope: v}}}}
	if _, err := createTriggers(nl, b, []*ir.SenTree{sen}, "act", 0, false); err == nil {
		t.Error("expected an error for a combinational sentree passed to createTriggers")
	}
}

func TestAddFirstIterationTriggerAssignment_PrependsToComputeFn(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	nl := ir.NewNetlist("TOP")
	nl.TopScope = top
	initFn := &ir.Function{Name: "_eval_initial", Scope: top}
	b := NewSenExprBuilder(initFn)

	kit, err := createTriggers(nl, b, nil, "ico", 1, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := len(kit.ComputeFn.Body)
	counter := top.NewVar("__ViterCount", 32, 0)
	kit.addFirstIterationTriggerAssignment(counter, 0)
	if len(kit.ComputeFn.Body) != before+1 {
		t.Errorf("expected exactly one statement prepended, got %d new statements", len(kit.ComputeFn.Body)-before)
	}
	if kit.ComputeFn.Body[0].Kind != ir.StmtAssign {
		t.Errorf("expected the prepended statement to be an assignment, got %v", kit.ComputeFn.Body[0].Kind)
	}
}

func TestAddDpiExportTriggerAssignment_PrependsBitAssignThenClear(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	nl := ir.NewNetlist("TOP")
	nl.TopScope = top
	initFn := &ir.Function{Name: "_eval_initial", Scope: top}
	b := NewSenExprBuilder(initFn)

	kit, err := createTriggers(nl, b, nil, "ico", 2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flag := top.NewVar("__VdpiExportTrigger", 1, 0)
	kit.addDpiExportTriggerAssignment(flag, 1)
	if len(kit.ComputeFn.Body) < 2 {
		t.Fatalf("expected at least 2 statements, got %d", len(kit.ComputeFn.Body))
	}
	if kit.ComputeFn.Body[0].Kind != ir.StmtAssign || kit.ComputeFn.Body[1].Kind != ir.StmtAssign {
		t.Error("expected a bit assignment followed by a flag clear")
	}
}
