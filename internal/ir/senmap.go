package ir

import "strconv"

// SenTreeMap maps an original SenTree to the synthetic single-SenItem
// SenTree a TriggerKit created for it (spec.md §4.4 step 5's "populate
// map[original_senTree] = synthetic_senTree").
type SenTreeMap map[*SenTree]*SenTree

// CollectTriggerSenTrees walks every activation in logic and returns the
// distinct clocked/hybrid SenTrees referenced, in first-seen order. This is
// the Go transcription of getSenTreesUsedBy: the original dedupes with a
// scratch "user1SetOnce" bit on each AstSenTree node; we use a
// map[*SenTree]bool seen-set keyed on Go pointer identity instead (spec.md
// §9's design note on replacing the intrusive user1 slot with a side map).
func CollectTriggerSenTrees(logic *LogicByScope) []*SenTree {
	seen := make(map[*SenTree]bool)
	var out []*SenTree
	logic.Foreach(func(_ *Scope, a *Activation) {
		if a.Sen == nil || seen[a.Sen] {
			return
		}
		if !a.Sen.HasClocked() && !a.Sen.HasHybrid() {
			return
		}
		seen[a.Sen] = true
		out = append(out, a.Sen)
	})
	return out
}

// InvertSenMap builds the inverse of a SenTreeMap (synthetic → original),
// asserting every synthetic SenTree has exactly one SenItem (the original's
// invertAndMergeSenTreeMap fatal-asserts this before inverting; here it is
// a returned error per SPEC_FULL §C.2 rather than a process abort).
func InvertSenMap(m SenTreeMap) (SenTreeMap, error) {
	inv := make(SenTreeMap, len(m))
	for orig, synth := range m {
		if synth == nil || len(synth.Items) != 1 {
			return nil, &InvalidSenMapError{Orig: orig, Synth: synth}
		}
		inv[synth] = orig
	}
	return inv, nil
}

// InvalidSenMapError reports a synthetic SenTree that does not carry
// exactly one SenItem during map inversion.
type InvalidSenMapError struct {
	Orig  *SenTree
	Synth *SenTree
}

func (e *InvalidSenMapError) Error() string {
	n := 0
	if e.Synth != nil {
		n = len(e.Synth.Items)
	}
	return "invertSenMap: synthetic sentree must have exactly one sen item, got " + strconv.Itoa(n)
}
