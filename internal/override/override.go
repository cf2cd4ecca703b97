// Package override loads the manually curated package→category table.
//
// The file maps category names to package lists:
//
//	[Browsers]
//	packages = ["firefox", "chromium"]
//
// TOML, YAML and JSON encodings are accepted, chosen by file extension.
package override

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/model"
)

// Entry lists the packages forced into one category.
type Entry struct {
	Packages []string `json:"packages" toml:"packages" yaml:"packages"`
}

// File is the decoded override file keyed by category name.
type File map[string]Entry

// Table is the inverted override file: lower-cased package name to canonical
// category. It is immutable after construction.
type Table struct {
	byPackage map[string]model.Category
}

// Lookup returns the forced category for pkgname, compared case-insensitively.
func (t *Table) Lookup(pkgname string) (model.Category, bool) {
	if t == nil {
		return "", false
	}
	c, ok := t.byPackage[strings.ToLower(pkgname)]
	return c, ok
}

// Len returns the number of overridden packages.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byPackage)
}

// Packages returns the overridden package names (lower-cased) in sorted order.
func (t *Table) Packages() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.byPackage))
	for name := range t.byPackage {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NewTable validates every category key against the closed set and inverts
// the file. Categories are processed in name order, so when a package is
// listed under several categories the alphabetically last one wins.
func NewTable(file File) (*Table, error) {
	keys := make([]string, 0, len(file))
	for key := range file {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	byPackage := make(map[string]model.Category)
	for _, key := range keys {
		category, ok := model.CanonicalCategory(key)
		if !ok {
			return nil, fmt.Errorf("override references %w '%s'", common.ErrUnknownCategory, key)
		}
		for _, pkg := range file[key].Packages {
			name := strings.ToLower(strings.TrimSpace(pkg))
			if name == "" {
				continue
			}
			if prev, dup := byPackage[name]; dup && prev != category {
				slog.Warn("Package overridden more than once", "package", name, "previous", prev, "category", category)
			}
			byPackage[name] = category
		}
	}
	return &Table{byPackage: byPackage}, nil
}

// Load reads and validates the override file at path. A missing file yields
// an empty table; any other read, decode or validation failure is fatal.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // path is operator-provided configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info("No override file found", "path", path)
			return &Table{byPackage: map[string]model.Category{}}, nil
		}
		return nil, fmt.Errorf("failed to read override file %s: %w", path, err)
	}

	file, err := Decode(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse overrides from %s: %w", path, err)
	}

	table, err := NewTable(file)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded overrides", "path", path, "categories", len(file), "packages", table.Len())
	return table, nil
}

// Decode parses raw according to ext (".toml", ".yaml", ".yml" or ".json").
// Unknown extensions are treated as TOML.
func Decode(raw []byte, ext string) (File, error) {
	file := File{}
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &file)
	case ".json":
		err = json.Unmarshal(raw, &file)
	default:
		err = toml.Unmarshal(raw, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidOverride, err)
	}
	return file, nil
}
