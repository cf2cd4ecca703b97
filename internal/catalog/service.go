package catalog

import (
	"sync"

	"github.com/geektoshi/nebula-harvest/internal/model"
)

// ResourceID is a path into the application's bundled resources.
type ResourceID string

const iconPrefix = "/tech/geektoshi/Nebula/icons/"

// FallbackIcon is returned for the fallback category and any unknown category.
const FallbackIcon ResourceID = iconPrefix + "voidlinux.png"

var categoryIcons = map[model.Category]ResourceID{
	model.CategoryBooks:        iconPrefix + "books.svg",
	model.CategoryBrowsers:     iconPrefix + "browsers.svg",
	model.CategoryChat:         iconPrefix + "chat.svg",
	model.CategoryDevelopment:  iconPrefix + "development.svg",
	model.CategoryEducation:    iconPrefix + "education.svg",
	model.CategoryEmail:        iconPrefix + "email.svg",
	model.CategoryFinance:      iconPrefix + "finance.svg",
	model.CategoryGaming:       iconPrefix + "games.svg",
	model.CategoryGraphics:     iconPrefix + "graphics.svg",
	model.CategoryKernels:      iconPrefix + "kernels.svg",
	model.CategoryMusic:        iconPrefix + "music.svg",
	model.CategoryNews:         iconPrefix + "news.svg",
	model.CategoryOffice:       iconPrefix + "office.svg",
	model.CategoryOther:        FallbackIcon,
	model.CategoryPhotos:       iconPrefix + "photo.svg",
	model.CategoryProductivity: iconPrefix + "productivity.svg",
	model.CategorySystem:       iconPrefix + "system.svg",
	model.CategoryTools:        iconPrefix + "tools.svg",
	model.CategoryVideo:        iconPrefix + "video.svg",
}

// IconForCategory maps a category name to its icon. It is total: unknown
// names get FallbackIcon. Matching is exact.
func IconForCategory(category string) ResourceID {
	if icon, ok := categoryIcons[model.Category(category)]; ok {
		return icon
	}
	return FallbackIcon
}

// Service answers category and icon queries. Every method is total and
// side-effect free.
type Service struct {
	index Index
}

// New returns a service over index.
func New(index Index) *Service {
	return &Service{index: index}
}

var defaultService = sync.OnceValue(func() *Service {
	return New(Index{entries: generatedEntries})
})

// Default returns the service over the index compiled into the binary.
func Default() *Service {
	return defaultService()
}

// CategoryFor returns the category of pkgname, or the fallback category when
// the package is unknown.
func (s *Service) CategoryFor(pkgname string) model.Category {
	if c, ok := s.index.Lookup(pkgname); ok {
		return c
	}
	return model.FallbackCategory
}

// IconForPackage returns the icon of the category pkgname belongs to.
func (s *Service) IconForPackage(pkgname string) ResourceID {
	return IconForCategory(string(s.CategoryFor(pkgname)))
}

// IconForCategory is IconForCategory exposed on the service.
func (s *Service) IconForCategory(category string) ResourceID {
	return IconForCategory(category)
}

// Len returns the number of packages the service knows about.
func (s *Service) Len() int {
	return s.index.Len()
}
