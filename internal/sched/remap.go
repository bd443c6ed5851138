package sched

import "hdlsched/internal/ir"

// remapSensitivities rewrites every activation's SenTree through m,
// leaving activations whose SenTree has no entry in m untouched (spec.md
// §4.6's "remap sensitivities" step, applied to hybrid logic after the
// TriggerKit factory has populated its original→synthetic map).
func remapSensitivities(logic *ir.LogicByScope, m ir.SenTreeMap) *ir.LogicByScope {
	out := ir.NewLogicByScope()
	logic.Foreach(func(s *ir.Scope, a *ir.Activation) {
		sen := a.Sen
		if synth, ok := m[sen]; ok {
			sen = synth
		}
		out.Add(s, &ir.Activation{Sen: sen, Body: a.Body, Procedure: a.Procedure})
	})
	return out
}

// rewriteSenTreeMapVec clones m's synthetic side, rewriting every
// trigger-vector reference inside each cloned SenTree from one vector
// variable to another (spec.md §4.7 step 10's preTrigMap/nbaTrigMap
// derivation from actTrigMap).
func rewriteSenTreeMapVec(m ir.SenTreeMap, from, to *ir.VScope) ir.SenTreeMap {
	out := make(ir.SenTreeMap, len(m))
	for orig, synth := range m {
		items := make([]*ir.SenItem, len(synth.Items))
		for i, it := range synth.Items {
			items[i] = &ir.SenItem{Edge: it.Edge, Sensed: ir.RewriteVarRef(it.Sensed, from, to)}
		}
		out[orig] = &ir.SenTree{Kind: synth.Kind, Items: items}
	}
	return out
}

// mergeSenTreeMaps combines several SenTreeMaps into one, asserting (by
// panicking) that no key appears in more than one of them (spec.md §4.7
// step 11's combined inverse map over pre ∪ act ∪ nba).
func mergeSenTreeMaps(maps ...ir.SenTreeMap) ir.SenTreeMap {
	out := make(ir.SenTreeMap)
	for _, m := range maps {
		for k, v := range m {
			if _, dup := out[k]; dup {
				panic("mergeSenTreeMaps: SenTree mapped twice")
			}
			out[k] = v
		}
	}
	return out
}
