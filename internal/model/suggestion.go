package model

// PackageSuggestion is the final classification for one package.
// Field order is the artifact's key order.
type PackageSuggestion struct {
	PkgName         string           `json:"pkgname"`
	Category        Category         `json:"category"`
	Score           Score            `json:"score"`
	OverrideApplied bool             `json:"override_applied"`
	Reasons         []string         `json:"reasons"`
	Alternatives    RankedCategories `json:"alternatives"`
	ShortDesc       *string          `json:"short_desc"`
	Homepage        *string          `json:"homepage"`
	TemplatePath    string           `json:"template_path"`
}

// SummaryEntry counts the packages assigned to one category.
type SummaryEntry struct {
	Category Category `json:"category"`
	Packages int      `json:"packages"`
}

// HarvestMetadata describes one harvest run.
type HarvestMetadata struct {
	GeneratedAt      string         `json:"generated_at"`
	TotalPackages    int            `json:"total_packages"`
	OverridesApplied int            `json:"overrides_applied"`
	Summary          []SummaryEntry `json:"summary"`
}

// HarvestOutput is the persisted artifact.
type HarvestOutput struct {
	Metadata HarvestMetadata     `json:"metadata"`
	Packages []PackageSuggestion `json:"packages"`
}

// OptionalString returns nil for empty strings so absent fields serialize as null.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
