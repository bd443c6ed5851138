package ir_test

import (
	"testing"

	"hdlsched/internal/ir"
)

func TestValidate_EmptyNetlistOK(t *testing.T) {
	nl := ir.NewNetlist("TOP")
	if err := nl.Validate(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidate_CatchesScopeBackreferenceMismatch(t *testing.T) {
	nl := ir.NewNetlist("TOP")
	child := ir.NewScope("sub", nl.TopScope)
	other := ir.NewScope("other", nl.TopScope)
	fn := &ir.Function{Name: "f"}
	child.AddFunc(fn)
	fn.Scope = other // corrupt the backreference after attaching

	if err := nl.Validate(); err == nil {
		t.Error("expected Validate to catch a function whose Scope no longer matches its owner")
	}
}

func TestValidateSenTree_StaticAndInitialAlwaysOK(t *testing.T) {
	for _, kind := range []ir.SenTreeKind{ir.SenStatic, ir.SenInitial, ir.SenFinal} {
		tree := &ir.SenTree{Kind: kind}
		if err := ir.ValidateSenTree(tree); err != nil {
			t.Errorf("kind %s: expected no error for an empty static/initial/final tree, got %v", kind, err)
		}
	}
}

func TestValidateSenTree_RejectsEmptyItemsForOtherKinds(t *testing.T) {
	tree := &ir.SenTree{Kind: ir.SenCombinational}
	if err := ir.ValidateSenTree(tree); err == nil {
		t.Error("expected error for a combinational sentree with no sensitivity items")
	}
}

func TestValidateSenTree_HybridRequiresBothAnEdgeAndALevelTerm(t *testing.T) {
	edgeOnly := &ir.SenTree{Kind: ir.SenHybrid, Items: []*ir.SenItem{
		{Edge: ir.EdgePosedge, Sensed: &ir.Const{Value: 1, Wd: 1}},
	}}
	if err := ir.ValidateSenTree(edgeOnly); err == nil {
		t.Error("expected error for a hybrid sentree with only an edge term")
	}

	mixed := &ir.SenTree{Kind: ir.SenHybrid, Items: []*ir.SenItem{
		{Edge: ir.EdgePosedge, Sensed: &ir.Const{Value: 1, Wd: 1}},
		{Edge: ir.EdgeChanged, Sensed: &ir.Const{Value: 1, Wd: 8}},
	}}
	if err := ir.ValidateSenTree(mixed); err != nil {
		t.Errorf("expected no error for a mixed edge+level hybrid sentree, got %v", err)
	}
}

func TestValidateTriggerAssignment_RejectsReadBeforeWrite(t *testing.T) {
	written := map[int]bool{0: true, 2: true}
	if err := ir.ValidateTriggerAssignment(written, 1); err == nil {
		t.Error("expected error reading a trigger bit that was never written")
	}
	if err := ir.ValidateTriggerAssignment(written, 2); err != nil {
		t.Errorf("expected no error reading a written trigger bit, got %v", err)
	}
}
