package sched

import (
	"fmt"

	"hdlsched/internal/ir"
)

// Classifier buckets every activation in a netlist by SenTree kind
// (spec.md §4.1), the Go transcription of gatherLogicClasses.
type Classifier struct{}

// GatherLogicClasses walks every scope of the netlist and buckets each
// non-empty activation by its SenTree's kind. Empty activations (no
// statements) are dropped. Static/initial/final/combinational trees must
// carry exactly one SenItem; violating that is an IR-contract error
// (spec.md §7) returned to the caller rather than panicking. Consumed
// activations are cleared from their owning scope (spec.md §3's
// lifecycle: activations are unlinked once their statements are moved).
func (Classifier) GatherLogicClasses(n *ir.Netlist) (*ir.LogicClasses, error) {
	classes := ir.NewLogicClasses()
	for _, s := range n.AllScopes() {
		for _, a := range s.Activations {
			if a.Empty() {
				continue
			}
			if err := classifyOne(classes, s, a); err != nil {
				return nil, err
			}
		}
		s.Activations = nil
	}
	return classes, nil
}

func classifyOne(classes *ir.LogicClasses, s *ir.Scope, a *ir.Activation) error {
	t := a.Sen
	if t == nil {
		return fmt.Errorf("scope %q: non-empty activation with no sentree", s.DotlessName())
	}
	switch t.Kind {
	case ir.SenStatic:
		if err := assertSingleSenItem(s, t); err != nil {
			return err
		}
		classes.Static.Add(s, a)
	case ir.SenInitial:
		if err := assertSingleSenItem(s, t); err != nil {
			return err
		}
		classes.Initial.Add(s, a)
	case ir.SenFinal:
		if err := assertSingleSenItem(s, t); err != nil {
			return err
		}
		classes.Final.Add(s, a)
	case ir.SenCombinational:
		if err := assertSingleSenItem(s, t); err != nil {
			return err
		}
		classes.Comb.Add(s, a)
	case ir.SenClocked:
		classes.Clocked.Add(s, a)
	case ir.SenHybrid:
		// Hybrid activations only ever arise from cycle breaking, which
		// runs after classification (spec.md §4.7 step 3); an IR that
		// already carries a hybrid tree at this point is malformed.
		return fmt.Errorf("scope %q: unexpected hybrid sentree before cycle breaking", s.DotlessName())
	default:
		return fmt.Errorf("scope %q: unknown sentree kind %d", s.DotlessName(), t.Kind)
	}
	return nil
}

func assertSingleSenItem(s *ir.Scope, t *ir.SenTree) error {
	if !t.SingleSenItem() {
		return fmt.Errorf("scope %q: %s sentree must have exactly one sen item, got %d", s.DotlessName(), t.Kind, len(t.Items))
	}
	return nil
}
