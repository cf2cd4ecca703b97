package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/geektoshi/nebula-harvest/internal/model"
)

// RenderSummary writes the per-category counts of a harvest as a table.
func RenderSummary(w io.Writer, meta model.HarvestMetadata) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\n",
		TableHeaderStyle.Render("Category"),
		TableHeaderStyle.Render("Packages"))
	fmt.Fprintf(tw, "%s\t%s\n", strings.Repeat("-", 20), strings.Repeat("-", 8))
	for _, entry := range meta.Summary {
		fmt.Fprintf(tw, "%s\t%d\n", entry.Category, entry.Packages)
	}
	fmt.Fprintf(tw, "%s\t%s\n",
		SubtleStyle.Render("overrides applied"),
		SubtleStyle.Render(fmt.Sprint(meta.OverridesApplied)))

	return tw.Flush()
}
