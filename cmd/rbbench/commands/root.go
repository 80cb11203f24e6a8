// Package commands implements the rbbench command handlers.
package commands

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	noColor    bool
}

// NewRootCommand builds the rbbench command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "rbbench",
		Short: "Exercise and time order-statistic red-black trees",
		Long: `rbbench drives the Trees package through fixed workloads.

Commands:
  run       Insert, remove, clear and walk a multi-key tree, verifying it after every phase
  compare   Time the same keys on Trees.RBTree and other ordered containers`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a config file")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", FormatText, "Log format: text, json")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newCompareCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func addWorkloadFlags(cmd *cobra.Command) {
	cmd.Flags().Int("size", defaultSize, "Number of keys per phase")
	cmd.Flags().Int64("seed", defaultSeed, "Seed of the random keys")
	cmd.Flags().Int("nth", defaultNth, "Steps taken by the walking phases")
	cmd.Flags().Int("repeat", defaultRepeat, "Repetitions of the walking phases")
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("rbbench %s\n", Version)
		},
	}
}
