// Package model defines the core data structures for the category harvester.
package model

import "strings"

// Category is one label from the closed package taxonomy.
type Category string

// The closed category set. FallbackCategory has no rules and a zero floor.
const (
	CategoryBooks        Category = "Books"
	CategoryBrowsers     Category = "Browsers"
	CategoryChat         Category = "Chat"
	CategoryDevelopment  Category = "Development"
	CategoryEducation    Category = "Education"
	CategoryEmail        Category = "E-mail"
	CategoryFinance      Category = "Finance"
	CategoryGaming       Category = "Gaming"
	CategoryGraphics     Category = "Graphics"
	CategoryKernels      Category = "Kernels"
	CategoryMusic        Category = "Music"
	CategoryNews         Category = "News"
	CategoryOffice       Category = "Office"
	CategoryOther        Category = "Other"
	CategoryPhotos       Category = "Photos"
	CategoryProductivity Category = "Productivity"
	CategorySystem       Category = "System"
	CategoryTools        Category = "Tools and Utilities"
	CategoryVideo        Category = "Video"

	// FallbackCategory is assigned to packages nothing else claims.
	FallbackCategory = CategoryOther
)

var allCategories = [...]Category{
	CategoryBooks,
	CategoryBrowsers,
	CategoryChat,
	CategoryDevelopment,
	CategoryEducation,
	CategoryEmail,
	CategoryFinance,
	CategoryGaming,
	CategoryGraphics,
	CategoryKernels,
	CategoryMusic,
	CategoryNews,
	CategoryOffice,
	CategoryOther,
	CategoryPhotos,
	CategoryProductivity,
	CategorySystem,
	CategoryTools,
	CategoryVideo,
}

// AllCategories returns the closed category set in alphabetical order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories[:])
	return out
}

// CanonicalCategory resolves name case-insensitively against the closed set and
// returns the canonical spelling.
func CanonicalCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range allCategories {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether c is an exact member of the closed set.
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
