package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/geektoshi/nebula-harvest/internal/catalog"
	"github.com/geektoshi/nebula-harvest/internal/cli"
	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/harvest"
)

func (a *app) indexCmd() *cobra.Command {
	var (
		artifact string
		out      string
		pkgName  string
	)

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Generate the compiled-in category index from the artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if artifact == "" {
				artifact = a.cfg.OutputPath
			}
			if out == "" {
				out = filepath.Join(a.cfg.Root, "internal", "catalog", catalog.GeneratedFile)
			}

			output, err := harvest.ReadArtifact(artifact)
			if err != nil {
				return common.NewUserError(
					fmt.Sprintf("Cannot read %s. Run harvest first.", artifact), err)
			}

			ix := catalog.BuildIndex(output)
			if err := catalog.WriteSource(out, ix, pkgName); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("Indexed %d packages into %s", ix.Len(), out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&artifact, "artifact", "", "artifact to read (default: configured output path)")
	cmd.Flags().StringVar(&out, "out", "", "generated Go file (default: internal/catalog/"+catalog.GeneratedFile+")")
	cmd.Flags().StringVar(&pkgName, "package", "catalog", "package clause of the generated file")
	return cmd
}
