package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/samplerlab/modcheck/internal/fixture"
)

// NewValidateCommand creates the validate command. It loads each
// scenario file, runs schema and semantic validation, and reports
// per-file results without executing any checks.
func NewValidateCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario.yaml>...",
		Short: "Validate scenario files without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := NewOutputFormatter(root.Format, cmd.OutOrStdout())

			type fileResult struct {
				File  string `json:"file"`
				Valid bool   `json:"valid"`
				Name  string `json:"name,omitempty"`
				Error string `json:"error,omitempty"`
			}

			results := make([]fileResult, 0, len(args))
			failed := 0
			for _, path := range args {
				slog.Debug("validating scenario", "file", path)
				sc, err := fixture.Load(path)
				if err != nil {
					failed++
					results = append(results, fileResult{File: path, Error: err.Error()})
					continue
				}
				results = append(results, fileResult{File: path, Valid: true, Name: sc.Name})
			}

			if root.Format == "json" {
				if failed > 0 {
					if err := formatter.Failure(fmt.Sprintf("%d of %d files invalid", failed, len(args)), results); err != nil {
						return NewExitError(ExitUsage, err)
					}
					return NewExitError(ExitCheckFailed, fmt.Errorf("%d invalid scenario files", failed))
				}
				if err := formatter.Success(results); err != nil {
					return NewExitError(ExitUsage, err)
				}
				return nil
			}

			for _, r := range results {
				if r.Valid {
					fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\t(%s)\n", r.File, r.Name)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "invalid\t%s\t%s\n", r.File, r.Error)
				}
			}
			if failed > 0 {
				return NewExitError(ExitCheckFailed, fmt.Errorf("%d invalid scenario files", failed))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}
