package sched

import "hdlsched/internal/ir"

// createStatic emits the top function `_eval_static` (slow), sequencing
// classes.Static by scope, then applies splitCheck (spec.md §4.6).
func createStatic(nl *ir.Netlist, classes *ir.LogicClasses, opts Options) (*ir.Function, error) {
	f := makeTopFunction(nl, "_eval_static", true)
	orderSequentially(nl, f, classes.Static)
	if err := splitCheck(nl, f, opts.OutputSplitCFuncs); err != nil {
		return nil, err
	}
	return f, nil
}

// createInitial emits the top function `_eval_initial` (slow), sequencing
// classes.Initial by scope. Splitting is deferred: the orchestrator may
// still append prev-value initializers (via the shared SenExprBuilder)
// after this call returns (spec.md §4.6).
func createInitial(nl *ir.Netlist, classes *ir.LogicClasses) *ir.Function {
	f := makeTopFunction(nl, "_eval_initial", true)
	orderSequentially(nl, f, classes.Initial)
	return f
}

// createFinal emits the top function `_eval_final` (slow), sequencing
// classes.Final by scope, then applies splitCheck (spec.md §4.6).
func createFinal(nl *ir.Netlist, classes *ir.LogicClasses, opts Options) (*ir.Function, error) {
	f := makeTopFunction(nl, "_eval_final", true)
	orderSequentially(nl, f, classes.Final)
	if err := splitCheck(nl, f, opts.OutputSplitCFuncs); err != nil {
		return nil, err
	}
	return f, nil
}
