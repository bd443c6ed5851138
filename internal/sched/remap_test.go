package sched

import (
	"testing"

	"hdlsched/internal/ir"
)

func TestRemapSensitivities_RewritesMappedSenTreesLeavesOthersAlone(t *testing.T) {
	s := ir.NewScope("TOP", nil)
	orig := &ir.SenTree{Kind: ir.SenCombinational}
	unmapped := &ir.SenTree{Kind: ir.SenCombinational}
	synth := &ir.SenTree{Kind: ir.SenClocked}

	logic := ir.NewLogicByScope()
	logic.Add(s, &ir.Activation{Sen: orig})
	logic.Add(s, &ir.Activation{Sen: unmapped})

	m := ir.SenTreeMap{orig: synth}
	out := remapSensitivities(logic, m)

	var seen []*ir.SenTree
	out.Foreach(func(_ *ir.Scope, a *ir.Activation) { seen = append(seen, a.Sen) })
	if len(seen) != 2 {
		t.Fatalf("expected 2 activations preserved, got %d", len(seen))
	}
	if seen[0] != synth {
		t.Error("expected the mapped sentree rewritten to its synthetic counterpart")
	}
	if seen[1] != unmapped {
		t.Error("expected the unmapped sentree left untouched")
	}
}

func TestRewriteSenTreeMapVec_ClonesAndRewritesTriggerVecReferences(t *testing.T) {
	top := ir.NewScope("TOP", nil)
	from := top.NewVar("__VactTriggered", 4, 0)
	to := top.NewVar("__VpreTriggered", 4, 0)
	orig := &ir.SenTree{Kind: ir.SenClocked}
	synth := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{
		{Edge: ir.EdgeTrue, Sensed: &ir.VarRef{VScope: from}},
	}}
	m := ir.SenTreeMap{orig: synth}

	out := rewriteSenTreeMapVec(m, from, to)
	rewritten := out[orig]
	if rewritten == synth {
		t.Error("expected a cloned sentree, not the original pointer")
	}
	ref := rewritten.Items[0].Sensed.(*ir.VarRef)
	if ref.VScope != to {
		t.Error("expected the trigger-vector reference rewritten to the destination variable")
	}
	// the source map must be untouched
	if synth.Items[0].Sensed.(*ir.VarRef).VScope != from {
		t.Error("expected the original map's sentree left unmodified")
	}
}

func TestMergeSenTreeMaps_CombinesDistinctEntriesFromEachMap(t *testing.T) {
	a := &ir.SenTree{Kind: ir.SenClocked}
	b := &ir.SenTree{Kind: ir.SenClocked}
	synthA := &ir.SenTree{Kind: ir.SenClocked}
	synthB := &ir.SenTree{Kind: ir.SenClocked}

	merged := mergeSenTreeMaps(ir.SenTreeMap{a: synthA}, ir.SenTreeMap{b: synthB})
	if len(merged) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(merged))
	}
	if merged[a] != synthA || merged[b] != synthB {
		t.Error("expected each map's entries preserved under merge")
	}
}
