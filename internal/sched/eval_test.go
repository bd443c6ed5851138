package sched

import (
	"testing"

	"hdlsched/internal/ir"
)

func TestCreateEval_NestsNbaLoopAroundAReplayOfTheActiveLoop(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	nl := ir.NewNetlist("TOP")
	nl.TopScope = top

	clk := top.NewVar("clk", 1, 0)
	initFn := &ir.Function{Name: "_eval_initial", Scope: top}
	b := NewSenExprBuilder(initFn)
	sen := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{{Edge: ir.EdgePosedge, Sensed: &ir.VarRef{VScope: clk}}}}
	actKit, err := createTriggers(nl, b, []*ir.SenTree{sen}, "act", 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	preTrigVec := top.NewVar("__VpreTriggered", actKit.TriggerVec.Type.Width, 0)
	nbaTrigVec := top.NewVar("__VnbaTriggered", actKit.TriggerVec.Type.Width, 0)
	actFn := makeSubFunction(nl, "_eval_act", false)
	nbaFn := makeSubFunction(nl, "_eval_nba", false)

	evalFn, nbaDumpFn, err := createEval(nl, actKit, nbaTrigVec, preTrigVec, actFn, nbaFn, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evalFn.Name != "_eval" {
		t.Errorf("expected the entry point named _eval, got %q", evalFn.Name)
	}
	if !evalFn.IsEntryPoint() {
		t.Error("expected _eval to carry the entry-point flag")
	}
	if nbaDumpFn.Name != "_dump_triggers__nba" {
		t.Errorf("expected a derived nba dump function, got %q", nbaDumpFn.Name)
	}
	// No ico loop was passed, so the body should start straight with the
	// nba loop's init statement.
	if len(evalFn.Body) == 0 || evalFn.Body[0].Kind != ir.StmtAssign {
		t.Error("expected the nba loop's iter-counter init as the first statement with no ico loop")
	}
	if len(evalFn.Body) == 0 {
		t.Fatal("expected a non-empty _eval body")
	}
	// The nba loop's while statement comes last and replays the active loop
	// inside its own body.
	nbaWhile := evalFn.Body[len(evalFn.Body)-1]
	if nbaWhile.Kind != ir.StmtWhile {
		t.Fatalf("expected the nba while loop as the last statement, got %v", nbaWhile.Kind)
	}
	nested := false
	for _, s := range nbaWhile.While.Body {
		if s.Kind == ir.StmtWhile {
			nested = true
		}
	}
	if !nested {
		t.Error("expected the active loop's while nested inside the nba loop body")
	}
}

func TestCreateEval_SplicesIcoLoopStatementsFirstWhenPresent(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	nl := ir.NewNetlist("TOP")
	nl.TopScope = top

	clk := top.NewVar("clk", 1, 0)
	initFn := &ir.Function{Name: "_eval_initial", Scope: top}
	b := NewSenExprBuilder(initFn)
	sen := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{{Edge: ir.EdgePosedge, Sensed: &ir.VarRef{VScope: clk}}}}
	actKit, err := createTriggers(nl, b, []*ir.SenTree{sen}, "act", 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	preTrigVec := top.NewVar("__VpreTriggered", actKit.TriggerVec.Type.Width, 0)
	nbaTrigVec := top.NewVar("__VnbaTriggered", actKit.TriggerVec.Type.Width, 0)
	actFn := makeSubFunction(nl, "_eval_act", false)
	nbaFn := makeSubFunction(nl, "_eval_nba", false)

	icoTrig := top.NewVar("__VicoTriggered", 1, 0)
	icoLoop := makeEvalLoop(top, "ico", "ico", icoTrig, nil, 100,
		func() []ir.Stmt { return nil },
		func() []ir.Stmt { return nil },
	)

	evalFn, _, err := createEval(nl, actKit, nbaTrigVec, preTrigVec, actFn, nbaFn, icoLoop, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(evalFn.Body) < len(icoLoop.Stmts) {
		t.Fatal("expected the eval body to at least contain the ico loop's statements")
	}
	for i, s := range icoLoop.Stmts {
		if evalFn.Body[i].Kind != s.Kind {
			t.Errorf("statement %d: expected the ico loop spliced first, kind mismatch", i)
		}
	}
}
