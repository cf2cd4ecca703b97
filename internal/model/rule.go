package model

import (
	"fmt"
	"strings"
)

// Rule contributes Weight to a category's score when Pattern is a
// case-insensitive substring of the selected field.
type Rule struct {
	Pattern string
	Field   Field
	Weight  float64
}

// NameRule matches against the package name.
func NameRule(pattern string, weight float64) Rule {
	return Rule{Field: FieldName, Pattern: pattern, Weight: weight}
}

// DescRule matches against the short description.
func DescRule(pattern string, weight float64) Rule {
	return Rule{Field: FieldShortDescription, Pattern: pattern, Weight: weight}
}

// HomepageRule matches against the homepage URL.
func HomepageRule(pattern string, weight float64) Rule {
	return Rule{Field: FieldHomepage, Pattern: pattern, Weight: weight}
}

// MaintainerRule matches against the maintainer string.
func MaintainerRule(pattern string, weight float64) Rule {
	return Rule{Field: FieldMaintainer, Pattern: pattern, Weight: weight}
}

// DependsRule matches when any dependency name contains the pattern.
func DependsRule(pattern string, weight float64) Rule {
	return Rule{Field: FieldDependencies, Pattern: pattern, Weight: weight}
}

// PathRule matches against the template's path within the source tree.
func PathRule(pattern string, weight float64) Rule {
	return Rule{Field: FieldSourcePath, Pattern: pattern, Weight: weight}
}

// DeclaredCategoryRule matches when any category the package declares contains the pattern.
func DeclaredCategoryRule(pattern string, weight float64) Rule {
	return Rule{Field: FieldDeclaredCategories, Pattern: pattern, Weight: weight}
}

// Reason renders the explanation recorded when the rule matches.
func (r Rule) Reason() string {
	return fmt.Sprintf("%s contains '%s'", r.Field.Label(), r.Pattern)
}

// CategorySpec is a category with its ordered rules and minimum candidate score.
type CategorySpec struct {
	Name  Category
	Rules []Rule
	Floor float64
}

// Validate ensures the spec names a known category and carries usable rules.
func (s CategorySpec) Validate() error {
	if !s.Name.IsValid() {
		return fmt.Errorf("unknown category %q", s.Name)
	}
	if s.Floor < 0 {
		return fmt.Errorf("category %s: floor must not be negative, got %.2f", s.Name, s.Floor)
	}
	for i, rule := range s.Rules {
		if strings.TrimSpace(rule.Pattern) == "" {
			return fmt.Errorf("category %s: rule %d has an empty pattern", s.Name, i)
		}
		if rule.Weight <= 0 {
			return fmt.Errorf("category %s: rule %d weight must be positive, got %.2f", s.Name, i, rule.Weight)
		}
	}
	return nil
}
