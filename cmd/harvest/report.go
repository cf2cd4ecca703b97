package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geektoshi/nebula-harvest/internal/cli"
	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/model"
	"github.com/geektoshi/nebula-harvest/internal/storage"
)

func (a *app) reportCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "report [pkgname...]",
		Short: "Summarize the latest exported run and explain individual packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.openStore(ctx, dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			run, err := store.LatestRun(ctx)
			if errors.Is(err, storage.ErrNotFound) {
				return common.NewUserError(
					fmt.Sprintf("No harvest stored in %s. Run harvest export first.", store.Path()), err)
			}
			if err != nil {
				return err
			}

			counts, err := store.CategoryCounts(ctx, run.ID)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, cli.FormatTitle(fmt.Sprintf("Run %d generated %s (%d packages) from %s",
				run.ID, run.GeneratedAt, run.TotalPackages, store.Path())))
			if err := cli.RenderSummary(w, model.HarvestMetadata{
				OverridesApplied: run.OverridesApplied,
				Summary:          counts,
			}); err != nil {
				return err
			}

			for _, name := range args {
				s, err := store.GetSuggestion(ctx, run.ID, name)
				if errors.Is(err, storage.ErrNotFound) {
					fmt.Fprintln(w, cli.FormatWarning(name+" is not in this run"))
					continue
				}
				if err != nil {
					return err
				}
				writeSuggestion(w, s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database (default: configured database path)")
	return cmd
}

func writeSuggestion(w io.Writer, s *model.PackageSuggestion) {
	fmt.Fprintf(w, "\n%s: %s (score %s)\n", s.PkgName, s.Category, s.Score)
	if len(s.Reasons) > 0 {
		fmt.Fprintf(w, "  reasons: %s\n", strings.Join(s.Reasons, "; "))
	}
	for _, alt := range s.Alternatives {
		fmt.Fprintf(w, "  alternative: %s (score %s)\n", alt.Category, alt.Score)
	}
}
