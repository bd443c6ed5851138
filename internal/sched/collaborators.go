// Package sched implements the scheduling pass: it takes a classified
// netlist and lowers its logic into the small set of generated functions a
// simulation kernel calls each eval step (spec.md §4).
package sched

import "hdlsched/internal/ir"

// ExtraTriggersFunc lets the Order collaborator append a synthetic
// SenTree as an extra trigger source for a variable it touched while
// ordering (spec.md §6's extraTriggersFor(vscope, outList) callback) --
// e.g. marking a top-level input as inputChanged, or a DPI-written
// variable as dpiExportTriggered.
type ExtraTriggersFunc func(v *ir.VScope, out *[]*ir.SenTree)

// Order assigns each activation across one or more logic sets a total
// evaluation order respecting data dependencies, and returns a single
// generated function evaluating them all in that order (spec.md §6). This
// is an externally-assumed collaborator: the scheduler calls it but does
// not implement dependency analysis itself. internal/planner's Order
// provides a reference implementation grounded on a plain dependency
// graph, deliberately simpler than Verilator's V3Order (out of scope per
// spec.md §1: no multi-threaded scoreboard).
//
// invMap is the synthetic-to-original sentree map (ir.InvertSenMap's
// output) relating trigger bits back to the sensed expressions that set
// them. tag names the region for generated sub-function names. mtasks
// permits emitting a multi-threaded task graph (nba region only, per
// spec.md §4.7 step 13). settleMode marks the settle loop's relaxed
// ordering requirements.
type Order func(nl *ir.Netlist, logicSets []*ir.LogicByScope, invMap ir.SenTreeMap, tag string, mtasks, settleMode bool, extraTriggersFor ExtraTriggersFunc) (*ir.Function, error)

// BreakCycles reclassifies part of comb as hybrid in place (mutating comb
// to remove what it reclassifies) and returns the hybrid logic it split
// out (spec.md §6). Externally assumed.
type BreakCycles func(nl *ir.Netlist, comb *ir.LogicByScope) (*ir.LogicByScope, error)

// Partition assigns clocked, combinational and hybrid logic to the
// pre/act/nba regions (spec.md §6): signals driven by clocked logic must
// land in act. Externally assumed.
type Partition func(clocked, comb, hybrid *ir.LogicByScope) (*ir.LogicRegions, error)

// Replicate fans combinational logic as needed to feed an ico loop on top
// of the already-partitioned act/nba regions, returning the new ico logic
// set plus the (possibly rewired) act/nba sets (spec.md §6). Externally
// assumed.
type Replicate func(regions *ir.LogicRegions) (ico, act, nba *ir.LogicByScope, err error)

// Collaborators bundles the four externally-assumed passes the scheduler
// depends on but does not itself implement (spec.md §6).
type Collaborators struct {
	Order       Order
	BreakCycles BreakCycles
	Partition   Partition
	Replicate   Replicate
}
