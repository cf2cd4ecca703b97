package srcpkg

import (
	"github.com/geektoshi/nebula-harvest/internal/model"
)

// Template keys read from each template.
const (
	KeyName        = "pkgname"
	KeyShortDesc   = "short_desc"
	KeyHomepage    = "homepage"
	KeyMaintainer  = "maintainer"
	KeyCategories  = "categories"
	TemplateName   = "template"
	DefaultTreeDir = "srcpkgs"
)

// DependencyKeys are concatenated, in order, into one dependency list.
var DependencyKeys = []string{
	"depends",
	"run_depends",
	"hostmakedepends",
	"makedepends",
	"checkdepends",
	"subpackages",
}

// ParseTemplate builds a PackageRecord from raw template text.
// It reports false when the template has no usable pkgname.
func ParseTemplate(raw, sourcePath string) (model.PackageRecord, bool) {
	name, ok := ExtractAssignment(raw, KeyName)
	if !ok || name == "" {
		return model.PackageRecord{}, false
	}

	rec := model.PackageRecord{
		Name:         name,
		SourcePath:   sourcePath,
		Dependencies: collectDependencies(raw),
	}
	rec.ShortDescription, _ = ExtractAssignment(raw, KeyShortDesc)
	rec.Homepage, _ = ExtractAssignment(raw, KeyHomepage)
	rec.Maintainer, _ = ExtractAssignment(raw, KeyMaintainer)
	if value, found := ExtractAssignment(raw, KeyCategories); found {
		rec.DeclaredCategories = ParseList(value)
	}

	return rec, true
}

// collectDependencies merges every dependency-like field, keeping the first
// occurrence of each name.
func collectDependencies(raw string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, key := range DependencyKeys {
		value, ok := ExtractAssignment(raw, key)
		if !ok {
			continue
		}
		for _, dep := range ParseList(value) {
			if _, dup := seen[dep]; dup {
				continue
			}
			seen[dep] = struct{}{}
			out = append(out, dep)
		}
	}
	return out
}
