package ir_test

import (
	"testing"

	"hdlsched/internal/ir"
)

func TestCollectTriggerSenTrees_DedupesAndSkipsCombinational(t *testing.T) {
	clockedSen := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{{Edge: ir.EdgePosedge}}}
	combSen := &ir.SenTree{Kind: ir.SenCombinational, Items: []*ir.SenItem{{Edge: ir.EdgeChanged}}}

	logic := ir.NewLogicByScope()
	s := ir.NewScope("s", nil)
	logic.Add(s, &ir.Activation{Sen: clockedSen})
	logic.Add(s, &ir.Activation{Sen: clockedSen}) // same pointer, should dedupe
	logic.Add(s, &ir.Activation{Sen: combSen})

	got := ir.CollectTriggerSenTrees(logic)
	if len(got) != 1 || got[0] != clockedSen {
		t.Fatalf("expected exactly [clockedSen], got %v", got)
	}
}

func TestInvertSenMap_RoundTrips(t *testing.T) {
	orig := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{{Edge: ir.EdgePosedge}}}
	synth := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{{Edge: ir.EdgeTrue, Sensed: &ir.Const{Value: 1, Wd: 1}}}}
	m := ir.SenTreeMap{orig: synth}

	inv, err := ir.InvertSenMap(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv[synth] != orig {
		t.Errorf("expected inverted map to recover the original sentree")
	}
}

func TestInvertSenMap_RejectsMultiItemSynthetic(t *testing.T) {
	orig := &ir.SenTree{Kind: ir.SenClocked}
	synth := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{
		{Edge: ir.EdgeTrue}, {Edge: ir.EdgeTrue},
	}}
	m := ir.SenTreeMap{orig: synth}

	if _, err := ir.InvertSenMap(m); err == nil {
		t.Error("expected error for a synthetic sentree with more than one item")
	}
}
