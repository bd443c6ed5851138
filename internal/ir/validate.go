package ir

import (
	"errors"
	"fmt"
)

// Validate checks the netlist's structural invariants (spec.md §3's
// invariant list), collecting every violation with errors.Join rather than
// failing on the first one -- mirrors internal/mir/validate.go's style of
// accumulating a diag.Bag-like list of independent errors.
func (n *Netlist) Validate() error {
	var errs []error
	seen := make(map[*Scope]bool)
	n.TopScope.Foreach(func(s *Scope) {
		if seen[s] {
			errs = append(errs, fmt.Errorf("scope %q: visited twice", s.DotlessName()))
			return
		}
		seen[s] = true
		for _, f := range s.Funcs {
			if f.Scope != s {
				errs = append(errs, fmt.Errorf("function %q: scope backreference mismatch", f.Name))
			}
		}
	})
	return errors.Join(errs...)
}

// ValidateSenTree checks invariant 1 (spec.md §3): every non-static,
// non-initial, non-final SenTree must carry at least one SenItem, and a
// hybrid tree must mix a changed/hybrid term with at least one edge term.
func ValidateSenTree(t *SenTree) error {
	if t == nil {
		return errors.New("nil sentree")
	}
	if t.HasStatic() || t.HasInitial() || t.HasFinal() {
		return nil
	}
	if len(t.Items) == 0 {
		return fmt.Errorf("sentree kind %s: no sensitivity items", t.Kind)
	}
	if t.HasHybrid() {
		hasEdge, hasLevel := false, false
		for _, it := range t.Items {
			switch it.Edge {
			case EdgePosedge, EdgeNegedge, EdgeBothedge:
				hasEdge = true
			case EdgeChanged, EdgeHybrid:
				hasLevel = true
			}
		}
		if !hasEdge || !hasLevel {
			return errors.New("hybrid sentree must mix an edge term with a changed/hybrid term")
		}
	}
	return nil
}

// ValidateTriggerAssignment checks invariant 2 (spec.md §3): a trigger
// vector's bit i is never read before it has been written at least once in
// the same pass.
func ValidateTriggerAssignment(written map[int]bool, readBit int) error {
	if !written[readBit] {
		return fmt.Errorf("trigger bit %d read before assignment", readBit)
	}
	return nil
}
