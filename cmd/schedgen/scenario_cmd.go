package main

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hdlsched/internal/fixtures"
	"hdlsched/internal/sched"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List and batch-run every canned scenario",
	RunE:  runScenarios,
}

func init() {
	scenariosCmd.Flags().Bool("run", false, "schedule every scenario concurrently instead of just listing them")
	scenariosCmd.Flags().Int("jobs", 4, "max concurrent scenarios when --run is set")
}

type scenarioResult struct {
	name    string
	totalMS float64
	err     error
}

func runScenarios(cmd *cobra.Command, args []string) error {
	all := fixtures.All()
	run, _ := cmd.Flags().GetBool("run")
	if !run {
		for _, s := range all {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", s.Name, s.Description)
		}
		return nil
	}

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	opts.Stats = true
	jobs, _ := cmd.Flags().GetInt("jobs")

	results := make([]scenarioResult, len(all))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)

	for i, s := range all {
		i, s := i, s
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			nl := s.Build()
			res, serr := sched.Schedule(nl, referenceCollaborators(), opts)
			mu.Lock()
			defer mu.Unlock()
			if serr != nil {
				results[i] = scenarioResult{name: s.Name, err: serr}
				return nil
			}
			results[i] = scenarioResult{name: s.Name, totalMS: res.Timing.TotalMS}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].name < results[j].name })
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s FAILED: %v\n", r.name, r.err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-18s %.2fms\n", r.name, r.totalMS)
	}
	return nil
}
