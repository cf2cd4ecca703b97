package model

import "strings"

// PackageRecord is the normalized metadata harvested from one template.
// Only Name is guaranteed to be non-empty.
type PackageRecord struct {
	Name               string
	ShortDescription   string
	Homepage           string
	Maintainer         string
	SourcePath         string
	DeclaredCategories []string
	Dependencies       []string
}

// FieldView is a lower-cased projection of a PackageRecord used for rule matching.
// Absent optional fields have no values and never satisfy a rule.
type FieldView struct {
	values [FieldDeclaredCategories + 1][]string
}

// NewFieldView lower-cases every field of rec once.
func NewFieldView(rec PackageRecord) FieldView {
	var v FieldView
	v.values[FieldName] = single(rec.Name)
	v.values[FieldShortDescription] = single(rec.ShortDescription)
	v.values[FieldHomepage] = single(rec.Homepage)
	v.values[FieldMaintainer] = single(rec.Maintainer)
	v.values[FieldSourcePath] = single(rec.SourcePath)
	v.values[FieldDependencies] = lowerAll(rec.Dependencies)
	v.values[FieldDeclaredCategories] = lowerAll(rec.DeclaredCategories)
	return v
}

// Values returns the lower-cased values of field f.
func (v FieldView) Values(f Field) []string {
	if f < 0 || int(f) >= len(v.values) {
		return nil
	}
	return v.values[f]
}

// Contains reports whether any value of field f contains the lower-cased pattern.
func (v FieldView) Contains(f Field, pattern string) bool {
	pattern = strings.ToLower(pattern)
	for _, value := range v.Values(f) {
		if strings.Contains(value, pattern) {
			return true
		}
	}
	return false
}

func single(s string) []string {
	if s == "" {
		return nil
	}
	return []string{strings.ToLower(s)}
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
