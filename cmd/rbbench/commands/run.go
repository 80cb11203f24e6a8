package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type workloadFunc = func(cmd *cobra.Command, cfg *Config) ([]Phase, error)

// newWorkloadCommand wires config loading, logging and rendering around run.
func newWorkloadCommand(opts *rootOptions, use, short, title string, run workloadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(opts.configPath, cmd)
			if err != nil {
				return err
			}

			phases, runErr := run(cmd, cfg)

			renderErr := RenderPhases(cmd.OutOrStdout(), title, phases, opts.noColor)
			if runErr != nil {
				return fmt.Errorf("%s: %w", use, runErr)
			}

			if renderErr != nil {
				return fmt.Errorf("failed to render report: %w", renderErr)
			}

			return nil
		},
	}

	addWorkloadFlags(cmd)

	return cmd
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	return newWorkloadCommand(opts, "run", "Run the verified multi-key workload", "Workload",
		func(cmd *cobra.Command, cfg *Config) ([]Phase, error) {
			return RunWorkload(cmd.Context(), cfg.Workload, NewLogger(cfg.Logging, cmd.ErrOrStderr()))
		})
}

func newCompareCommand(opts *rootOptions) *cobra.Command {
	return newWorkloadCommand(opts, "compare", "Compare Trees.RBTree with other ordered containers", "Comparison",
		func(cmd *cobra.Command, cfg *Config) ([]Phase, error) {
			phases, err := RunCompare(cmd.Context(), cfg.Workload, NewLogger(cfg.Logging, cmd.ErrOrStderr()))
			if err != nil {
				return phases, err
			}

			for _, p := range phases {
				if p.Status == StatusFailed {
					return phases, fmt.Errorf("%s %s: %w", p.Impl, p.Name, ErrSizeMismatch)
				}
			}

			return phases, nil
		})
}
