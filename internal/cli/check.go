package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samplerlab/modcheck/internal/fixture"
	"github.com/samplerlab/modcheck/internal/harness"
	"github.com/samplerlab/modcheck/internal/store"
)

// NewCheckCommand creates the check command. It runs one or more
// scenario files through the harness and reports per-check results.
func NewCheckCommand(root *RootOptions) *cobra.Command {
	var recordPath string

	cmd := &cobra.Command{
		Use:   "check <scenario.yaml>...",
		Short: "Run scenario checks and report results",
		Long: `Check loads each scenario file, executes its checks and prints the
outcome. With --record the run, its events and any rendered graphs are
written to a SQLite capture database for later inspection.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			formatter := NewOutputFormatter(root.Format, cmd.OutOrStdout())

			var st *store.Store
			if recordPath != "" {
				var err error
				st, err = store.Open(recordPath)
				if err != nil {
					return NewExitError(ExitUsage, fmt.Errorf("opening capture store: %w", err))
				}
				defer st.Close()
			}

			h := harness.New()
			results := make([]*harness.Result, 0, len(args))
			failed := 0
			for _, path := range args {
				sc, err := fixture.Load(path)
				if err != nil {
					return NewExitError(ExitUsage, fmt.Errorf("loading %s: %w", path, err))
				}
				slog.Debug("running scenario", "file", path, "scenario", sc.Name)
				result, err := h.Run(sc)
				if err != nil {
					return NewExitError(ExitUsage, fmt.Errorf("running %s: %w", path, err))
				}
				if st != nil {
					if _, err := h.Record(ctx, st, sc, result); err != nil {
						return NewExitError(ExitUsage, fmt.Errorf("recording %s: %w", sc.Name, err))
					}
				}
				if !result.Pass {
					failed++
				}
				results = append(results, result)
			}

			if root.Format == "json" {
				if failed > 0 {
					if err := formatter.Failure(fmt.Sprintf("%d of %d scenarios failed", failed, len(results)), results); err != nil {
						return NewExitError(ExitUsage, err)
					}
					return NewExitError(ExitCheckFailed, fmt.Errorf("%d scenarios failed", failed))
				}
				if err := formatter.Success(results); err != nil {
					return NewExitError(ExitUsage, err)
				}
				return nil
			}

			out := cmd.OutOrStdout()
			for _, result := range results {
				status := "PASS"
				if !result.Pass {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%s\t%s\n", status, result.Scenario)
				for _, ev := range result.Events {
					if ev.Pass && !root.Verbose {
						continue
					}
					mark := "ok"
					if !ev.Pass {
						mark = "fail"
					}
					fmt.Fprintf(out, "  %s\t%s %s\n", mark, ev.Kind, ev.Name)
					if ev.Detail != "" && !ev.Pass {
						for _, line := range strings.Split(strings.TrimRight(ev.Detail, "\n"), "\n") {
							fmt.Fprintf(out, "    %s\n", line)
						}
					}
				}
			}
			if failed > 0 {
				return NewExitError(ExitCheckFailed, fmt.Errorf("%d scenarios failed", failed))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&recordPath, "record", "", "record runs to a SQLite database at this path")

	return cmd
}
