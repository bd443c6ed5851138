package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hdlsched/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "schedgen",
	Short: "Event-driven scheduling pass for a classified HDL netlist",
	Long:  `schedgen runs the scheduling pipeline over a canned or loaded netlist and prints the generated entry points.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show per-stage timing information")
	rootCmd.PersistentFlags().Bool("stats", false, "persist and diff stage timings via the run cache")
	rootCmd.PersistentFlags().String("config", "", "path to a TOML file overriding scheduler options")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
}
