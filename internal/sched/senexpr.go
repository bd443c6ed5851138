package sched

import (
	"fmt"

	"hdlsched/internal/ir"
)

// SenExprBuilder synthesizes trigger expressions plus the prev-value state
// variables and per-cycle update assignments they depend on (spec.md §4.3).
// One builder is shared across every region of a schedule so prev-value
// storage for structurally identical sensed expressions is unified
// (SPEC_FULL §B's side-map-instead-of-user1 note; spec.md §9).
type SenExprBuilder struct {
	initFn *ir.Function

	// prev and hasUpdate are keyed on Expr.Key() -- the structural-key
	// side map that replaces Verilator's intrusive user1 scratch field.
	prev      map[string]*ir.VScope
	hasUpdate map[string]bool

	updates []ir.Stmt
	nextTmp uint32
}

// NewSenExprBuilder returns a builder whose prev-value initializers are
// emitted into initFn (typically _eval_initial, spec.md §4.7 step 4).
func NewSenExprBuilder(initFn *ir.Function) *SenExprBuilder {
	return &SenExprBuilder{
		initFn:    initFn,
		prev:      make(map[string]*ir.VScope),
		hasUpdate: make(map[string]bool),
	}
}

// Build synthesizes the trigger expression for senTree, folding every
// SenItem's term with logical OR, and reports whether any term forces a
// first-iteration ("x-init-edge") fire.
func (b *SenExprBuilder) Build(senTree *ir.SenTree) (ir.Expr, bool, error) {
	var expr ir.Expr
	firedAtInit := false
	for _, item := range senTree.Items {
		term, initFire, err := b.createTerm(item)
		if err != nil {
			return nil, false, err
		}
		if term == nil {
			// ILLEGAL: dropped silently, warned about by an earlier pass
			// (spec.md §7).
			continue
		}
		firedAtInit = firedAtInit || initFire
		if expr == nil {
			expr = term
			continue
		}
		expr = ir.Or(expr, term)
	}
	return expr, firedAtInit, nil
}

func (b *SenExprBuilder) createTerm(item *ir.SenItem) (ir.Expr, bool, error) {
	switch item.Edge {
	case ir.EdgeIllegal:
		return nil, false, nil
	case ir.EdgeChanged, ir.EdgeHybrid:
		prev := b.prevFor(item.Sensed)
		b.emitUpdate(item.Sensed, prev)
		// The source unconditionally forces firedAtInit for these two edge
		// kinds, even when the initial value already equals the first
		// sampled value (spurious first-iteration fire). Reproduced as-is
		// per spec.md §9's Open Question -- not "fixed" here.
		return ir.Neq(item.Sensed.Clone(), prevRef(prev)), true, nil
	case ir.EdgeBothedge:
		sensed := contractToBit(item.Sensed)
		prev := b.prevFor(sensed)
		b.emitUpdate(sensed, prev)
		return ir.Sel01(ir.Xor(sensed.Clone(), prevRef(prev))), false, nil
	case ir.EdgePosedge:
		sensed := contractToBit(item.Sensed)
		prev := b.prevFor(sensed)
		b.emitUpdate(sensed, prev)
		return ir.Sel01(ir.And(sensed.Clone(), ir.Not(prevRef(prev)))), false, nil
	case ir.EdgeNegedge:
		sensed := contractToBit(item.Sensed)
		prev := b.prevFor(sensed)
		b.emitUpdate(sensed, prev)
		return ir.Sel01(ir.And(ir.Not(sensed.Clone()), prevRef(prev))), false, nil
	case ir.EdgeEvent:
		cur := item.Sensed
		term := ir.MethodCall(cur.Clone(), "isFired")
		clear := ir.MethodCallStatement(cur.Clone(), "clearFired")
		enqueue := ir.MethodCallStatement(nil, "enqueueTriggeredEventForClearing", cur.Clone())
		guard := ir.Stmt{Kind: ir.StmtIf, If: ir.IfStmt{
			Cond: ir.MethodCall(cur.Clone(), "isFired"),
			Then: []ir.Stmt{clear, enqueue},
		}}
		b.updates = append(b.updates, guard)
		return term, false, nil
	case ir.EdgeTrue:
		return item.Sensed.Clone(), false, nil
	default:
		return nil, false, fmt.Errorf("senexpr: unknown edge kind %d", item.Edge)
	}
}

// contractToBit wraps a wider-than-1-bit expression in a Sel 0,1
// extraction; the scheduler always emits this wrapper for edge-sensed
// terms even though the IR producer is responsible for guaranteeing the
// signal really is single-bit (spec.md §4.3).
func contractToBit(e ir.Expr) ir.Expr {
	if e.Width() == 1 {
		return e
	}
	return ir.Sel01(e)
}

// prevFor returns the persistent prev-value VScope for a structurally
// keyed sensed expression, allocating and initializing it on first use.
func (b *SenExprBuilder) prevFor(sensed ir.Expr) *ir.VScope {
	key := sensed.Key()
	if v, ok := b.prev[key]; ok {
		return v
	}
	name := b.prevName(sensed)
	v := b.initFn.Scope.NewVar(name, sensed.Width(), 0)
	b.initFn.AddStmt(ir.SetConst(v, 0))
	b.prev[key] = v
	return v
}

func (b *SenExprBuilder) prevName(sensed ir.Expr) string {
	if vr, ok := ir.AsVarRef(sensed); ok && vr.VScope != nil {
		return fmt.Sprintf("__Vtrigrprev__%s__%s", vr.VScope.Scope.DotlessName(), vr.VScope.Name)
	}
	name := fmt.Sprintf("__Vtrigprev__expression_%d", b.nextTmp)
	b.nextTmp++
	return name
}

func prevRef(v *ir.VScope) ir.Expr { return &ir.VarRef{VScope: v} }

// emitUpdate records `prev := sensed` for the current round, at most once
// per structural key (spec.md §8 property 3: update idempotence per round).
func (b *SenExprBuilder) emitUpdate(sensed ir.Expr, prev *ir.VScope) {
	key := sensed.Key()
	if b.hasUpdate[key] {
		return
	}
	b.hasUpdate[key] = true
	lhs := &ir.VarRef{VScope: prev, Write: true}
	b.updates = append(b.updates, ir.Assign(lhs, sensed.Clone()))
}

// GetAndClearUpdates returns the statements accumulated since the last
// call, clears the per-round hasUpdate set, but retains the prev cache so
// subsequent builds reuse the same storage (spec.md §4.3).
func (b *SenExprBuilder) GetAndClearUpdates() []ir.Stmt {
	out := b.updates
	b.updates = nil
	b.hasUpdate = make(map[string]bool)
	return out
}
