package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samplerlab/modcheck/internal/store"
)

// NewRunsCommand creates the runs command for inspecting a capture
// database written by check --record.
func NewRunsCommand(root *RootOptions) *cobra.Command {
	var (
		scenario string
		runID    string
	)

	cmd := &cobra.Command{
		Use:   "runs <capture.db>",
		Short: "List or inspect recorded runs in a capture database",
		Long: `Runs lists the recorded harness executions in a SQLite capture
database. With --run it prints that run's check events and rendered
graphs instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := store.Open(args[0])
			if err != nil {
				return NewExitError(ExitUsage, fmt.Errorf("opening capture store: %w", err))
			}
			defer st.Close()

			formatter := NewOutputFormatter(root.Format, cmd.OutOrStdout())
			out := cmd.OutOrStdout()

			if runID != "" {
				run, err := st.ReadRun(ctx, runID)
				if err != nil {
					return NewExitError(ExitUsage, err)
				}
				events, err := st.ReadEvents(ctx, runID)
				if err != nil {
					return NewExitError(ExitUsage, err)
				}
				if root.Format == "json" {
					if err := formatter.Success(map[string]any{
						"run":    run,
						"events": events,
					}); err != nil {
						return NewExitError(ExitUsage, err)
					}
					return nil
				}
				status := "PASS"
				if !run.Pass {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", run.ID, status, run.Scenario)
				for _, ev := range events {
					mark := "ok"
					if !ev.Pass {
						mark = "fail"
					}
					fmt.Fprintf(out, "  [%d] %s\t%s %s\n", ev.Seq, mark, ev.Kind, ev.Name)
					if ev.Detail != "" {
						for _, line := range strings.Split(strings.TrimRight(ev.Detail, "\n"), "\n") {
							fmt.Fprintf(out, "    %s\n", line)
						}
					}
				}
				return nil
			}

			runs, err := st.ListRuns(ctx, scenario)
			if err != nil {
				return NewExitError(ExitUsage, err)
			}
			if root.Format == "json" {
				if err := formatter.Success(runs); err != nil {
					return NewExitError(ExitUsage, err)
				}
				return nil
			}
			for _, run := range runs {
				status := "PASS"
				if !run.Pass {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", run.ID, status, run.Scenario)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&scenario, "scenario", "", "only list runs for this scenario name")
	cmd.Flags().StringVar(&runID, "run", "", "show events for a single run ID")

	return cmd
}
