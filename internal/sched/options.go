package sched

// Options is the scheduler's option surface (spec.md §6), loadable from a
// TOML config file by cmd/schedgen (SPEC_FULL §A).
type Options struct {
	// OutputSplitCFuncs is the statement-count threshold splitCheck
	// partitions oversized functions at; zero disables splitting.
	OutputSplitCFuncs int `toml:"output_split_cfuncs"`
	// ConvergeLimit bounds fixed-point loop iterations before a region is
	// considered non-convergent.
	ConvergeLimit int `toml:"converge_limit"`
	// SystemC marks top-level ico inputs as externally sensitive for
	// SystemC-flavored code emission (spec.md §4.6).
	SystemC bool `toml:"system_c"`
	// Mtasks permits the nba region's Order call to emit a multi-threaded
	// task graph.
	Mtasks bool `toml:"mtasks"`
	// XInitialEdge is carried and loaded from config, but no pass reads it:
	// createTriggers decides firedAtInit from the sensed edge kinds alone,
	// whether or not it is set.
	XInitialEdge bool `toml:"x_initial_edge"`
	// Stats attaches the observ.Timer stage report to Result.Timing; the
	// stages are timed whether or not it is set.
	Stats bool `toml:"stats"`
	// DumpTreeLevel is carried and loaded from config, but no pass reads it;
	// the debug dump functions are emitted the same way at every level.
	DumpTreeLevel int `toml:"dump_tree_level"`
}

// DefaultOptions mirrors Verilator's conservative defaults: splitting and
// SystemC/mtasks emission disabled, a converge limit generous enough for
// ordinary designs.
func DefaultOptions() Options {
	return Options{
		OutputSplitCFuncs: 0,
		ConvergeLimit:     100,
		SystemC:           false,
		Mtasks:            false,
		XInitialEdge:      false,
		Stats:             false,
		DumpTreeLevel:     0,
	}
}
