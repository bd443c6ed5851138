package sched_test

import (
	"testing"

	"hdlsched/internal/ir"
	"hdlsched/internal/sched"
)

func newInitFn() *ir.Function {
	s := ir.NewScope("TOP", nil)
	return &ir.Function{Name: "_eval_initial", Scope: s}
}

func TestSenExprBuilder_ChangedEdgeComparesAgainstAPrevVariable(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	v := top.NewVar("a", 8, 0)
	initFn := newInitFn()
	b := sched.NewSenExprBuilder(initFn)

	sen := &ir.SenTree{Kind: ir.SenCombinational, Items: []*ir.SenItem{
		{Edge: ir.EdgeChanged, Sensed: &ir.VarRef{VScope: v}},
	}}
	expr, initFire, err := b.Build(sen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !initFire {
		t.Error("expected a changed-edge term to force firedAtInit")
	}
	if expr == nil {
		t.Fatal("expected a non-nil trigger expression")
	}
	if len(initFn.Body) != 1 {
		t.Fatalf("expected one prev-value initializer emitted, got %d", len(initFn.Body))
	}
}

func TestSenExprBuilder_SharesOnePrevVariableAcrossStructurallyIdenticalTerms(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	v := top.NewVar("clk", 1, 0)
	initFn := newInitFn()
	b := sched.NewSenExprBuilder(initFn)

	sen := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{
		{Edge: ir.EdgePosedge, Sensed: &ir.VarRef{VScope: v}},
	}}
	if _, _, err := b.Build(sen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := b.Build(sen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(initFn.Body) != 1 {
		t.Errorf("expected the same sensed expression to reuse one prev variable across builds, got %d initializers", len(initFn.Body))
	}
}

func TestSenExprBuilder_GetAndClearUpdatesIsIdempotentWithinARound(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	v := top.NewVar("a", 8, 0)
	initFn := newInitFn()
	b := sched.NewSenExprBuilder(initFn)

	sen := &ir.SenTree{Kind: ir.SenCombinational, Items: []*ir.SenItem{
		{Edge: ir.EdgeChanged, Sensed: &ir.VarRef{VScope: v}},
	}}
	if _, _, err := b.Build(sen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := b.GetAndClearUpdates()
	if len(first) != 1 {
		t.Fatalf("expected one update statement, got %d", len(first))
	}
	second := b.GetAndClearUpdates()
	if len(second) != 0 {
		t.Errorf("expected no updates on a second call with nothing new built, got %d", len(second))
	}
}

func TestSenExprBuilder_PosedgeWrapsMultiBitSignalInSel01(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	v := top.NewVar("wide", 8, 0)
	initFn := newInitFn()
	b := sched.NewSenExprBuilder(initFn)

	sen := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{
		{Edge: ir.EdgePosedge, Sensed: &ir.VarRef{VScope: v}},
	}}
	expr, _, err := b.Build(sen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expr.Width() != 1 {
		t.Errorf("expected a posedge term to collapse to width 1, got %d", expr.Width())
	}
}

func TestSenExprBuilder_OrsMultipleItemsTogether(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	a := top.NewVar("a", 1, 0)
	b2 := top.NewVar("b", 1, 0)
	initFn := newInitFn()
	b := sched.NewSenExprBuilder(initFn)

	sen := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{
		{Edge: ir.EdgePosedge, Sensed: &ir.VarRef{VScope: a}},
		{Edge: ir.EdgePosedge, Sensed: &ir.VarRef{VScope: b2}},
	}}
	expr, _, err := b.Build(sen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node, ok := expr.(*ir.Node)
	if !ok || node.Op != "or" {
		t.Errorf("expected the two terms folded with OR, got %#v", expr)
	}
}
