package harvest

import (
	"sort"
	"time"

	"github.com/geektoshi/nebula-harvest/internal/model"
)

// TimestampFormat is the generated_at layout: RFC 3339 in UTC, seconds precision.
const TimestampFormat = time.RFC3339

// BuildOutput sorts suggestions by package name, summarizes per-category
// counts in category order and stamps the generation time.
func BuildOutput(suggestions []model.PackageSuggestion, overridesApplied int, generatedAt time.Time) model.HarvestOutput {
	sorted := make([]model.PackageSuggestion, len(suggestions))
	copy(sorted, suggestions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PkgName < sorted[j].PkgName
	})

	return model.HarvestOutput{
		Metadata: model.HarvestMetadata{
			GeneratedAt:      FormatTimestamp(generatedAt),
			TotalPackages:    len(sorted),
			OverridesApplied: overridesApplied,
			Summary:          Summarize(sorted),
		},
		Packages: sorted,
	}
}

// Summarize counts suggestions per category, ordered by category name.
// Categories with no packages are omitted.
func Summarize(suggestions []model.PackageSuggestion) []model.SummaryEntry {
	counts := make(map[model.Category]int)
	for _, s := range suggestions {
		counts[s.Category]++
	}

	summary := make([]model.SummaryEntry, 0, len(counts))
	for category, n := range counts {
		summary = append(summary, model.SummaryEntry{Category: category, Packages: n})
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Category < summary[j].Category
	})
	return summary
}

// FormatTimestamp renders t in TimestampFormat.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampFormat)
}
