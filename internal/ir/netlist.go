package ir

// Netlist is the whole-design container the scheduler operates over: a
// scope tree plus the handful of well-known entry points generated code
// must expose (spec.md §3).
type Netlist struct {
	TopScope *Scope

	// Eval and EvalNBA are set by the scheduler: Eval is the _eval entry
	// point, and EvalNBA is the ordered nba-region function that _eval's
	// NBA loop calls.
	Eval    *Function
	EvalNBA *Function

	// DPIExportTrigger, when non-nil, is the external flag variable foreign
	// DPI export callouts set to force a re-evaluation (spec.md §4.4 step 1).
	DPIExportTrigger *VScope
}

// NewNetlist allocates an empty netlist rooted at a fresh top scope.
func NewNetlist(topName string) *Netlist {
	return &Netlist{TopScope: NewScope(topName, nil)}
}

// AllScopes returns every scope in the netlist, depth first from the top.
func (n *Netlist) AllScopes() []*Scope {
	var out []*Scope
	n.TopScope.Foreach(func(s *Scope) { out = append(out, s) })
	return out
}

// AllVars returns every variable declared anywhere in the netlist.
func (n *Netlist) AllVars() []*VScope {
	var out []*VScope
	for _, s := range n.AllScopes() {
		out = append(out, s.Vars...)
	}
	return out
}
