package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/geektoshi/nebula-harvest/internal/catalog"
)

func (a *app) lookupCmd() *cobra.Command {
	var (
		artifact string
		compiled bool
	)

	cmd := &cobra.Command{
		Use:   "lookup <pkgname>...",
		Short: "Show the category and icon of packages",
		Long: `Look up packages in the harvest artifact. Unknown packages report the
fallback category. With --compiled the index built into this binary is used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := a.catalogService(artifact, compiled)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range args {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", name, svc.CategoryFor(name), svc.IconForPackage(name))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&artifact, "artifact", "", "artifact to read (default: configured output path)")
	cmd.Flags().BoolVar(&compiled, "compiled", false, "use the compiled-in index")
	return cmd
}

// catalogService returns the compiled-in service or one over the artifact at
// path (the configured output when empty).
func (a *app) catalogService(path string, compiled bool) *catalog.Service {
	if compiled {
		return catalog.Default()
	}
	if path == "" {
		path = a.cfg.OutputPath
	}
	svc := catalog.New(catalog.LoadIndex(path))
	if svc.Len() == 0 {
		slog.Warn("Category index is empty, every package reports the fallback category", "artifact", path)
	}
	return svc
}
