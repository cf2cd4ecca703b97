package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geektoshi/nebula-harvest/internal/cli"
	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/harvest"
	"github.com/geektoshi/nebula-harvest/internal/model"
	"github.com/geektoshi/nebula-harvest/internal/storage"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		artifact string
		dbPath   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Store the artifact in a SQLite database for reporting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if artifact == "" {
				artifact = a.cfg.OutputPath
			}

			output, err := harvest.ReadArtifact(artifact)
			if err != nil {
				return common.NewUserError(
					fmt.Sprintf("Cannot read %s. Run harvest first.", artifact), err)
			}

			ctx := cmd.Context()
			store, err := a.openStore(ctx, dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			runID, err := store.SaveHarvest(ctx, output)
			if err != nil {
				return err
			}
			counts, err := store.CategoryCounts(ctx, runID)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, cli.FormatSuccess(
				fmt.Sprintf("Stored run %d (%d packages) in %s", runID, len(output.Packages), store.Path())))
			return cli.RenderSummary(w, model.HarvestMetadata{
				OverridesApplied: output.Metadata.OverridesApplied,
				Summary:          counts,
			})
		},
	}

	cmd.Flags().StringVar(&artifact, "artifact", "", "artifact to read (default: configured output path)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database (default: configured database path)")
	return cmd
}

// openStore opens and migrates the database at path, or the configured one
// when path is empty.
func (a *app) openStore(ctx context.Context, path string) (*storage.SQLiteStorage, error) {
	if path == "" {
		path = a.cfg.DatabasePath
	}
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate %s: %w", path, err)
	}
	return store, nil
}
