package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geektoshi/nebula-harvest/internal/override"
)

func TestSpotlight_ShelvesMatchCompiledIndex(t *testing.T) {
	svc := Default()
	for _, s := range Spotlight() {
		for _, pkg := range s.Packages {
			assert.Equal(t, s.Category, svc.CategoryFor(pkg), "%s on shelf %s", pkg, s.Title)
		}
		assert.Equal(t, IconForCategory(string(s.Category)), s.Icon())
	}
}

func TestSpotlight_ShelvesMatchSeedOverrides(t *testing.T) {
	table, err := override.Load(filepath.Join("..", "..", "data", "category_overrides.toml"))
	require.NoError(t, err)

	total := 0
	for _, s := range Spotlight() {
		for _, pkg := range s.Packages {
			got, ok := table.Lookup(pkg)
			require.True(t, ok, "%s has no override", pkg)
			assert.Equal(t, s.Category, got, "%s on shelf %s", pkg, s.Title)
			total++
		}
	}
	assert.Equal(t, table.Len(), total, "every seed override sits on a shelf")
}
