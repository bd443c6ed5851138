package sched_test

import (
	"testing"

	"hdlsched/internal/sched"
)

func TestDefaultOptions_DisablesSplittingAndSystemCByDefault(t *testing.T) {
	opts := sched.DefaultOptions()
	if opts.OutputSplitCFuncs != 0 {
		t.Error("expected splitting disabled by default")
	}
	if opts.SystemC || opts.Mtasks || opts.XInitialEdge || opts.Stats {
		t.Error("expected every boolean option off by default")
	}
	if opts.ConvergeLimit <= 0 {
		t.Error("expected a positive default converge limit")
	}
}
