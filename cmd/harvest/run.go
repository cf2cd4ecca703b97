package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geektoshi/nebula-harvest/internal/cli"
	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/harvest"
)

func (a *app) runHarvest(cmd *cobra.Command, _ []string) error {
	out, err := harvest.Run(cmd.Context(), harvest.Options{
		SourceDir:     a.cfg.SourceDir,
		OverridesPath: a.cfg.OverridesPath,
		OutputPath:    a.cfg.OutputPath,
		Workers:       a.cfg.Workers,
		Progress:      cmd.ErrOrStderr(),
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrSourceTreeMissing):
			return common.NewUserError(
				fmt.Sprintf("Missing %s. Vendor void-packages first.", a.cfg.SourceDir), err)
		case errors.Is(err, common.ErrUnknownCategory), errors.Is(err, common.ErrInvalidOverride):
			return common.NewUserError(
				fmt.Sprintf("Fix %s: %v", a.cfg.OverridesPath, err), err)
		}
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Wrote %d package suggestions to %s",
		out.Metadata.TotalPackages, a.cfg.OutputPath)))
	return cli.RenderSummary(w, out.Metadata)
}
