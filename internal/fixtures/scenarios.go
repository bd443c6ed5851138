// Package fixtures builds small, hand-written ir.Netlist instances for the
// end-to-end scenarios spec.md §8 names (S1-S6), so internal/sched's
// schedule.go can be exercised without a front-end parser. Grounded on
// internal/mir/simplify_cfg_test.go's hand-built-literal-fixture style:
// every scenario here is a plain Go function building IR nodes directly,
// never a golden file.
package fixtures

import (
	"strconv"

	"hdlsched/internal/ir"
)

// Scenario names the canned fixtures, used both by tests and by
// cmd/schedgen's scenario subcommand.
type Scenario struct {
	Name        string
	Description string
	Build       func() *ir.Netlist
}

// All returns every canned scenario in spec.md §8's S1-S6 order.
func All() []Scenario {
	return []Scenario{
		{"pure-comb", "a single purely combinational activation", PureCombinational},
		{"single-clock", "one posedge-clocked register", SingleClock},
		{"hybrid-cycle", "a combinational feedback loop broken into hybrid", HybridCycle},
		{"event-type", "an activation sensitive to a named event", EventType},
		{"dpi-write", "a variable written by a foreign DPI export", DPIWrite},
		{"split-threshold", "clocked logic large enough to trigger splitCheck", SplitThreshold},
	}
}

// PureCombinational (S1): one top-level scope, one combinational
// activation `out = a & b`, no clocked logic at all -- exercises the ico
// loop and act region with an empty nba region.
func PureCombinational() *ir.Netlist {
	nl := ir.NewNetlist("TOP")
	top := nl.TopScope

	a := top.NewVar("a", 1, ir.VarTopLevelInput|ir.VarNonOutput)
	b := top.NewVar("b", 1, ir.VarTopLevelInput|ir.VarNonOutput)
	out := top.NewVar("out", 1, 0)

	sen := &ir.SenTree{Kind: ir.SenCombinational, Items: []*ir.SenItem{
		{Edge: ir.EdgeChanged, Sensed: &ir.VarRef{VScope: a}},
	}}
	body := []ir.Stmt{
		ir.Assign(&ir.VarRef{VScope: out, Write: true},
			ir.And(&ir.VarRef{VScope: a}, &ir.VarRef{VScope: b})),
	}
	top.AddActivation(&ir.Activation{Sen: sen, Body: body})
	return nl
}

// SingleClock (S2): one register clocked on posedge clk, `q <= d`.
func SingleClock() *ir.Netlist {
	nl := ir.NewNetlist("TOP")
	top := nl.TopScope

	clk := top.NewVar("clk", 1, ir.VarTopLevelInput|ir.VarNonOutput)
	d := top.NewVar("d", 1, ir.VarTopLevelInput|ir.VarNonOutput)
	q := top.NewVar("q", 1, 0)

	sen := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{
		{Edge: ir.EdgePosedge, Sensed: &ir.VarRef{VScope: clk}},
	}}
	body := []ir.Stmt{
		ir.Assign(&ir.VarRef{VScope: q, Write: true}, &ir.VarRef{VScope: d}),
	}
	top.AddActivation(&ir.Activation{Sen: sen, Body: body})
	return nl
}

// HybridCycle (S3): two combinational activations reading each other's
// output, `b = a + 1; a = b + 1`, a self-sustaining feedback loop that
// BreakCycles must reclassify as hybrid.
func HybridCycle() *ir.Netlist {
	nl := ir.NewNetlist("TOP")
	top := nl.TopScope

	a := top.NewVar("a", 8, 0)
	b := top.NewVar("b", 8, 0)

	senA := &ir.SenTree{Kind: ir.SenCombinational, Items: []*ir.SenItem{
		{Edge: ir.EdgeChanged, Sensed: &ir.VarRef{VScope: b}},
	}}
	bodyA := []ir.Stmt{
		ir.Assign(&ir.VarRef{VScope: a, Write: true},
			ir.Add(&ir.VarRef{VScope: b}, &ir.Const{Value: 1, Wd: 8})),
	}
	top.AddActivation(&ir.Activation{Sen: senA, Body: bodyA})

	senB := &ir.SenTree{Kind: ir.SenCombinational, Items: []*ir.SenItem{
		{Edge: ir.EdgeChanged, Sensed: &ir.VarRef{VScope: a}},
	}}
	bodyB := []ir.Stmt{
		ir.Assign(&ir.VarRef{VScope: b, Write: true},
			ir.Add(&ir.VarRef{VScope: a}, &ir.Const{Value: 1, Wd: 8})),
	}
	top.AddActivation(&ir.Activation{Sen: senB, Body: bodyB})

	return nl
}

// EventType (S4): an activation sensitive to a named event handle firing,
// modeled as an opaque VarRef standing in for the event variable.
func EventType() *ir.Netlist {
	nl := ir.NewNetlist("TOP")
	top := nl.TopScope

	ev := top.NewVar("doneEvent", 1, 0)
	flag := top.NewVar("flag", 1, 0)

	sen := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{
		{Edge: ir.EdgeEvent, Sensed: &ir.VarRef{VScope: ev}},
	}}
	body := []ir.Stmt{
		ir.SetConst(flag, 1),
	}
	top.AddActivation(&ir.Activation{Sen: sen, Body: body})
	return nl
}

// DPIWrite (S5): a variable mutated by a foreign DPI export, exercising
// the DPIExportTrigger wiring in createInputCombLoop/createTriggers.
func DPIWrite() *ir.Netlist {
	nl := ir.NewNetlist("TOP")
	top := nl.TopScope

	dpiVar := top.NewVar("dpiResult", 32, ir.VarWrittenByDPI)
	out := top.NewVar("out", 32, 0)

	sen := &ir.SenTree{Kind: ir.SenCombinational, Items: []*ir.SenItem{
		{Edge: ir.EdgeChanged, Sensed: &ir.VarRef{VScope: dpiVar}},
	}}
	body := []ir.Stmt{
		ir.Assign(&ir.VarRef{VScope: out, Write: true}, &ir.VarRef{VScope: dpiVar}),
	}
	top.AddActivation(&ir.Activation{Sen: sen, Body: body})

	nl.DPIExportTrigger = top.NewVar("__VdpiExportTrigger", 1, 0)
	return nl
}

// SplitThreshold (S6): enough clocked activations in one scope to exceed a
// small splitCheck threshold, exercising splitCheck's chunking path.
func SplitThreshold() *ir.Netlist {
	nl := ir.NewNetlist("TOP")
	top := nl.TopScope

	clk := top.NewVar("clk", 1, ir.VarTopLevelInput|ir.VarNonOutput)
	clkSen := &ir.SenTree{Kind: ir.SenClocked, Items: []*ir.SenItem{
		{Edge: ir.EdgePosedge, Sensed: &ir.VarRef{VScope: clk}},
	}}

	const n = 64
	for i := 0; i < n; i++ {
		reg := top.NewVar(regName(i), 8, 0)
		body := []ir.Stmt{
			ir.Assign(&ir.VarRef{VScope: reg, Write: true},
				ir.Add(&ir.VarRef{VScope: reg}, &ir.Const{Value: 1, Wd: 8})),
		}
		top.AddActivation(&ir.Activation{Sen: clkSen, Body: body})
	}
	return nl
}

func regName(i int) string {
	return "reg_" + strconv.Itoa(i)
}
