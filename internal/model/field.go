package model

// Field selects which part of a PackageRecord a Rule inspects.
type Field int

// Field selectors.
const (
	FieldName Field = iota
	FieldShortDescription
	FieldHomepage
	FieldMaintainer
	FieldDependencies
	FieldSourcePath
	FieldDeclaredCategories
)

// Label is the human-readable field name used in reason strings.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "pkgname"
	case FieldShortDescription:
		return "short_desc"
	case FieldHomepage:
		return "homepage"
	case FieldMaintainer:
		return "maintainer"
	case FieldDependencies:
		return "dependencies"
	case FieldSourcePath:
		return "template path"
	case FieldDeclaredCategories:
		return "template category"
	default:
		return "unknown"
	}
}

func (f Field) String() string {
	return f.Label()
}
