package planner

import "hdlsched/internal/ir"

// Partition implements sched.Partition per the simulation-semantics
// contract of spec.md §6: signals driven by clocked logic land in act;
// purely combinational logic (post cycle-breaking) runs in pre so its
// results are ready before act reads them; hybrid logic -- already
// earmarked for settle-style re-evaluation -- runs in nba, where its
// extra fixed-point iteration cost is paid only when something in the
// current tick actually needs it.
func Partition(clocked, comb, hybrid *ir.LogicByScope) (*ir.LogicRegions, error) {
	regions := ir.NewLogicRegions()
	comb.Foreach(func(s *ir.Scope, a *ir.Activation) { regions.Pre.Add(s, a) })
	clocked.Foreach(func(s *ir.Scope, a *ir.Activation) { regions.Act.Add(s, a) })
	hybrid.Foreach(func(s *ir.Scope, a *ir.Activation) { regions.NBA.Add(s, a) })
	return regions, nil
}
