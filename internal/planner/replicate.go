package planner

import "hdlsched/internal/ir"

// Replicate implements sched.Replicate: regions.Pre becomes the ico
// candidate logic (it is exactly the purely combinational logic that must
// stabilize against external inputs before act/nba run); act and nba pass
// through largely unchanged, except that any variable regions.Pre writes
// and regions.Act also reads gets a private per-region replica so act's
// read does not create a false cross-region dependency back into ico
// (spec.md §6's fan-out framing; ir.LogicReplicas records the
// replacement).
func Replicate(regions *ir.LogicRegions) (ico, act, nba *ir.LogicByScope, err error) {
	icoOut := ir.NewLogicByScope()
	regions.Pre.Foreach(func(s *ir.Scope, a *ir.Activation) { icoOut.Add(s, a.Clone()) })

	icoWrites := make(map[string]*ir.VScope)
	regions.Pre.Foreach(func(s *ir.Scope, a *ir.Activation) {
		_, writes := ir.CollectVarRefs(a.Body)
		for _, w := range writes {
			for _, v := range s.Vars {
				if (&ir.VarRef{VScope: v}).Key() == w {
					icoWrites[w] = v
				}
			}
		}
	})

	replicas := ir.NewLogicReplicas()
	actOut := ir.NewLogicByScope()
	regions.Act.Foreach(func(s *ir.Scope, a *ir.Activation) {
		reads, _ := ir.CollectVarRefs(a.Body)
		body := a.Body
		for _, r := range reads {
			orig, ok := icoWrites[r]
			if !ok {
				continue
			}
			replica, exists := replicas.ByOriginal[orig]
			var replicaVar *ir.VScope
			if exists {
				replicaVar = replica[ir.RegionAct]
			}
			if replicaVar == nil {
				replicaVar = s.NewVar(orig.Name+"__actCopy", orig.Type.Width, orig.Flags)
				replicas.AddReplica(orig, ir.RegionAct, replicaVar)
			}
			body = ir.RewriteVarRefOnly(body, orig, replicaVar)
		}
		actOut.Add(s, &ir.Activation{Sen: a.Sen, Body: body, Procedure: a.Procedure})
	})

	nbaOut := ir.NewLogicByScope()
	regions.NBA.Foreach(func(s *ir.Scope, a *ir.Activation) { nbaOut.Add(s, a) })

	return icoOut, actOut, nbaOut, nil
}
