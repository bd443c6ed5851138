package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hdlsched/internal/fixtures"
	"hdlsched/internal/ir"
	"hdlsched/internal/planner"
	"hdlsched/internal/sched"
	"hdlsched/internal/statcache"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <scenario>",
	Short: "Run the full scheduling pipeline over a canned scenario",
	Long:  `schedule loads one of the built-in netlist fixtures, runs the scheduler's pipeline over it, and prints the generated top-level functions.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringSlice("dump", []string{"eval"}, "which generated functions to print (eval, eval_initial, eval_static, eval_final, eval_settle, all)")
}

func findScenario(name string) (fixtures.Scenario, error) {
	for _, s := range fixtures.All() {
		if s.Name == name {
			return s, nil
		}
	}
	return fixtures.Scenario{}, fmt.Errorf("unknown scenario %q (run `schedgen scenarios` to list them)", name)
}

func loadOptions(cmd *cobra.Command) (sched.Options, error) {
	opts := sched.DefaultOptions()
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, &opts); err != nil {
			return opts, fmt.Errorf("loading config %s: %w", configPath, err)
		}
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		opts.Stats = true
	}
	if stats, _ := cmd.Root().PersistentFlags().GetBool("stats"); stats {
		opts.Stats = true
	}
	return opts, nil
}

func referenceCollaborators() sched.Collaborators {
	return sched.Collaborators{
		Order:       planner.Order,
		BreakCycles: planner.BreakCycles,
		Partition:   planner.Partition,
		Replicate:   planner.Replicate,
	}
}

func runSchedule(cmd *cobra.Command, args []string) error {
	scenario, err := findScenario(args[0])
	if err != nil {
		return err
	}
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	nl := scenario.Build()
	result, err := sched.Schedule(nl, referenceCollaborators(), opts)
	if err != nil {
		return fmt.Errorf("scheduling %s: %w", scenario.Name, err)
	}

	dumpWanted, _ := cmd.Flags().GetStringSlice("dump")
	for _, name := range dumpWanted {
		printDump(cmd, name, result)
	}

	if opts.Stats {
		cache, cerr := statcache.Open()
		if cerr == nil {
			reportStats(cmd, scenario.Name, result, cache)
		}
	}

	timingsWanted, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if timingsWanted {
		fmt.Fprint(cmd.OutOrStdout(), result.Timing.Summary())
	}
	return nil
}

func printDump(cmd *cobra.Command, name string, result *sched.Result) {
	fns := map[string]*ir.Function{
		"eval":         result.Eval,
		"eval_initial": result.EvalInitial,
		"eval_static":  result.EvalStatic,
		"eval_final":   result.EvalFinal,
		"eval_settle":  result.EvalSettle,
	}
	if name == "all" {
		for _, key := range []string{"eval_static", "eval_initial", "eval_final", "eval_settle", "eval"} {
			printOneDump(cmd, key, fns[key])
		}
		return
	}
	printOneDump(cmd, name, fns[name])
}

func printOneDump(cmd *cobra.Command, name string, fn *ir.Function) {
	if fn == nil {
		return
	}
	if useColor(cmd) {
		bold := color.New(color.Bold)
		bold.Fprintln(cmd.OutOrStdout(), "// "+name)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "// "+name)
	}
	fmt.Fprint(cmd.OutOrStdout(), fn.Print())
}

func reportStats(cmd *cobra.Command, scenario string, result *sched.Result, cache *statcache.Cache) {
	stageNames := make([]string, len(result.Timing.Phases))
	for i, p := range result.Timing.Phases {
		stageNames[i] = p.Name
	}
	key := statcache.KeyFor(scenario, stageNames)
	prev, found, _ := cache.Get(key)
	if found {
		fmt.Fprintf(cmd.OutOrStdout(), "previous run: total %.2fms (this run: %.2fms)\n", prev.Report.TotalMS, result.Timing.TotalMS)
	}
	payload := &statcache.Payload{Report: result.Timing, Options: map[string]string{"scenario": scenario}}
	_ = cache.Put(key, payload)
}
