// Package catalog answers package→category and category→icon queries at
// runtime from an immutable index compiled out of a harvest artifact.
package catalog

import (
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/geektoshi/nebula-harvest/internal/harvest"
	"github.com/geektoshi/nebula-harvest/internal/model"
)

// Index is an immutable case-insensitive package name → category map.
// The zero value is an empty index. It is safe for concurrent reads.
type Index struct {
	entries map[string]model.Category
}

// Entry is one indexed package.
type Entry struct {
	Package  string
	Category model.Category
}

// NewIndex builds an index from explicit entries. Keys are lower-cased; on
// collisions the first entry in slice order wins.
func NewIndex(entries []Entry) Index {
	m := make(map[string]model.Category, len(entries))
	for _, e := range entries {
		key := normalizeName(e.Package)
		if key == "" || e.Category == "" {
			continue
		}
		if _, dup := m[key]; dup {
			continue
		}
		m[key] = e.Category
	}
	return Index{entries: m}
}

// BuildIndex reduces an artifact to its package → category mapping.
func BuildIndex(out *model.HarvestOutput) Index {
	if out == nil {
		return Index{}
	}
	entries := make([]Entry, len(out.Packages))
	for i, p := range out.Packages {
		entries[i] = Entry{Package: p.PkgName, Category: p.Category}
	}
	return NewIndex(entries)
}

// DecodeIndex builds an index from artifact JSON. Malformed input yields an
// empty index.
func DecodeIndex(data []byte) Index {
	out, err := harvest.DecodeArtifact(data)
	if err != nil {
		slog.Warn("Ignoring malformed category artifact", "error", err)
		return Index{}
	}
	return BuildIndex(out)
}

// LoadIndex reads an artifact from disk. A missing or malformed file yields
// an empty index, so every lookup falls back.
func LoadIndex(path string) Index {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-provided configuration
	if err != nil {
		slog.Warn("Category artifact unavailable", "path", path, "error", err)
		return Index{}
	}
	return DecodeIndex(data)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the category recorded for name.
func (ix Index) Lookup(name string) (model.Category, bool) {
	c, ok := ix.entries[normalizeName(name)]
	return c, ok
}

// Len returns the number of indexed packages.
func (ix Index) Len() int {
	return len(ix.entries)
}

// Entries returns every entry sorted by package name.
func (ix Index) Entries() []Entry {
	out := make([]Entry, 0, len(ix.entries))
	for pkg, c := range ix.entries {
		out = append(out, Entry{Package: pkg, Category: c})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Package < out[j].Package
	})
	return out
}
