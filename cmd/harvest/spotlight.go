package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/geektoshi/nebula-harvest/internal/catalog"
	"github.com/geektoshi/nebula-harvest/internal/cli"
)

func (a *app) spotlightCmd() *cobra.Command {
	var (
		artifact string
		compiled bool
	)

	cmd := &cobra.Command{
		Use:   "spotlight",
		Short: "List the curated showcase shelves and how their packages are categorized",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := a.catalogService(artifact, compiled)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, shelf := range catalog.Spotlight() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n",
					cli.TableHeaderStyle.Render(shelf.Title), shelf.Category, shelf.Icon())
				for _, pkg := range shelf.Packages {
					got := svc.CategoryFor(pkg)
					if got == shelf.Category {
						fmt.Fprintf(tw, "  %s\t%s\t\n", pkg, got)
						continue
					}
					fmt.Fprintf(tw, "  %s\t%s\t%s\n", pkg, got,
						cli.FormatWarning("expected "+shelf.Category.String()))
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&artifact, "artifact", "", "artifact to read (default: configured output path)")
	cmd.Flags().BoolVar(&compiled, "compiled", false, "use the compiled-in index")
	return cmd
}
