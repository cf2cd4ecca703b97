// Package classification scores package records against the category rule
// table and selects a winning category.
package classification

import (
	"errors"
	"fmt"
	"strings"

	"github.com/geektoshi/nebula-harvest/internal/model"
)

// MaxAlternatives bounds the runner-up categories kept per suggestion.
const MaxAlternatives = 4

// Reason strings recorded for non-rule outcomes.
const (
	ReasonNoMatch        = "no heuristic match"
	overrideReasonPrefix = "override → "
)

// ErrDuplicateSpec is returned when a rule table names the same category twice.
var ErrDuplicateSpec = errors.New("duplicate category spec")

// OverrideLookup resolves manually curated package categories.
type OverrideLookup interface {
	// Lookup returns the forced category for a package name, compared case-insensitively.
	Lookup(pkgname string) (model.Category, bool)
}

type noOverrides struct{}

func (noOverrides) Lookup(string) (model.Category, bool) { return "", false }

// Classifier assigns categories to package records. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	overrides OverrideLookup
	specs     []model.CategorySpec
}

// NewClassifier validates specs and returns a classifier over them.
// The fallback category is never scored. A nil overrides disables overrides.
func NewClassifier(specs []model.CategorySpec, overrides OverrideLookup) (*Classifier, error) {
	if overrides == nil {
		overrides = noOverrides{}
	}

	seen := make(map[model.Category]bool, len(specs))
	scored := make([]model.CategorySpec, 0, len(specs))
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid rule table: %w", err)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpec, spec.Name)
		}
		seen[spec.Name] = true

		if spec.Name == model.FallbackCategory {
			if len(spec.Rules) > 0 || spec.Floor != 0 {
				return nil, fmt.Errorf("invalid rule table: fallback category %s must have no rules and a zero floor", spec.Name)
			}
			continue
		}

		rules := make([]model.Rule, len(spec.Rules))
		for i, rule := range spec.Rules {
			rule.Pattern = strings.ToLower(rule.Pattern)
			rules[i] = rule
		}
		scored = append(scored, model.CategorySpec{Name: spec.Name, Rules: rules, Floor: spec.Floor})
	}

	return &Classifier{specs: scored, overrides: overrides}, nil
}

// NewDefaultClassifier returns a classifier over DefaultSpecs.
func NewDefaultClassifier(overrides OverrideLookup) (*Classifier, error) {
	return NewClassifier(DefaultSpecs(), overrides)
}

// Candidates scores rec against every category and returns those reaching
// their floor, in evaluation order.
func (c *Classifier) Candidates(rec model.PackageRecord) model.RankedCategories {
	view := model.NewFieldView(rec)

	var ranked model.RankedCategories
	for _, spec := range c.specs {
		var (
			score   float64
			reasons []string
		)
		for _, rule := range spec.Rules {
			if view.Contains(rule.Field, rule.Pattern) {
				score += rule.Weight
				reasons = append(reasons, rule.Reason())
			}
		}
		if score > 0 && score >= spec.Floor {
			ranked = append(ranked, model.RankedCategory{
				Category: spec.Name,
				Score:    model.Score(score),
				Reasons:  reasons,
			})
		}
	}
	return ranked
}

// Rank orders candidates and splits them into a winner and up to
// MaxAlternatives runners-up. With no candidates the fallback wins with score 0.
func Rank(candidates model.RankedCategories) (model.RankedCategory, model.RankedCategories) {
	if len(candidates) == 0 {
		return model.RankedCategory{
			Category: model.FallbackCategory,
			Score:    0,
			Reasons:  []string{ReasonNoMatch},
		}, model.RankedCategories{}
	}

	ranked := make(model.RankedCategories, len(candidates))
	copy(ranked, candidates)
	ranked.Sort()

	return *ranked.Top(), ranked.Runners(MaxAlternatives)
}

// Classify produces the suggestion for rec. An override short-circuits scoring.
func (c *Classifier) Classify(rec model.PackageRecord) model.PackageSuggestion {
	suggestion := model.PackageSuggestion{
		PkgName:      rec.Name,
		ShortDesc:    model.OptionalString(rec.ShortDescription),
		Homepage:     model.OptionalString(rec.Homepage),
		TemplatePath: rec.SourcePath,
	}

	if category, ok := c.overrides.Lookup(rec.Name); ok {
		suggestion.Category = category
		suggestion.Score = model.ForcedScore
		suggestion.OverrideApplied = true
		suggestion.Reasons = []string{overrideReasonPrefix + string(category)}
		suggestion.Alternatives = model.RankedCategories{}
		return suggestion
	}

	winner, alternatives := Rank(c.Candidates(rec))
	suggestion.Category = winner.Category
	suggestion.Score = winner.Score
	suggestion.Reasons = winner.Reasons
	suggestion.Alternatives = alternatives
	return suggestion
}
