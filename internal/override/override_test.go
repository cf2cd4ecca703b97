package override

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "category_overrides.toml", `
[Browsers]
packages = ["Firefox", "chromium"]

["tools and utilities"]
packages = ["htop", "  ", "ripgrep"]

[e-mail]
packages = ["thunderbird"]
`)

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, table.Len())
	assert.Equal(t, []string{"chromium", "firefox", "htop", "ripgrep", "thunderbird"}, table.Packages())

	tests := []struct {
		pkg    string
		want   model.Category
		wantOK bool
	}{
		{pkg: "firefox", want: model.CategoryBrowsers, wantOK: true},
		{pkg: "FIREFOX", want: model.CategoryBrowsers, wantOK: true},
		{pkg: "htop", want: model.CategoryTools, wantOK: true},
		{pkg: "Thunderbird", want: model.CategoryEmail, wantOK: true},
		{pkg: "vim", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.pkg, func(t *testing.T) {
			got, ok := table.Lookup(tt.pkg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_YAMLAndJSON(t *testing.T) {
	yamlPath := writeFile(t, "overrides.yaml", "Gaming:\n  packages:\n    - steam\n    - 0ad\n")
	jsonPath := writeFile(t, "overrides.json", `{"video": {"packages": ["obs-studio"]}}`)

	table, err := Load(yamlPath)
	require.NoError(t, err)
	got, ok := table.Lookup("0ad")
	assert.True(t, ok)
	assert.Equal(t, model.CategoryGaming, got)

	table, err = Load(jsonPath)
	require.NoError(t, err)
	got, ok = table.Lookup("OBS-Studio")
	assert.True(t, ok)
	assert.Equal(t, model.CategoryVideo, got)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Zero(t, table.Len())
	_, ok := table.Lookup("anything")
	assert.False(t, ok)
}

func TestLoad_UnknownCategoryFails(t *testing.T) {
	path := writeFile(t, "overrides.toml", `
[Browsers]
packages = ["firefox"]

[Spreadsheets]
packages = ["gnumeric"]
`)

	table, err := Load(path)
	assert.Nil(t, table)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownCategory)
	assert.Contains(t, err.Error(), "Spreadsheets")
}

func TestLoad_Unparsable(t *testing.T) {
	path := writeFile(t, "overrides.toml", "[Browsers\npackages = [")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidOverride)
	assert.Contains(t, err.Error(), "failed to parse overrides")
}

func TestLoad_Unreadable(t *testing.T) {
	// A directory cannot be read as a file.
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read override file")
}

func TestNewTable_DuplicatePackageIsDeterministic(t *testing.T) {
	file := File{
		"Music": {Packages: []string{"audacity"}},
		"Video": {Packages: []string{"Audacity"}},
	}

	for range 10 {
		table, err := NewTable(file)
		require.NoError(t, err)
		got, ok := table.Lookup("audacity")
		require.True(t, ok)
		assert.Equal(t, model.CategoryVideo, got)
	}
}

func TestTable_NilSafe(t *testing.T) {
	var table *Table
	_, ok := table.Lookup("x")
	assert.False(t, ok)
	assert.Zero(t, table.Len())
	assert.Nil(t, table.Packages())
}

func TestDecode_UnknownExtensionIsTOML(t *testing.T) {
	file, err := Decode([]byte("[Chat]\npackages = [\"weechat\"]\n"), ".conf")
	require.NoError(t, err)
	assert.Equal(t, []string{"weechat"}, file["Chat"].Packages)
}

func TestLoad_SeedFile(t *testing.T) {
	table, err := Load(filepath.Join("..", "..", "data", "category_overrides.toml"))
	require.NoError(t, err)

	assert.Equal(t, 45, table.Len())
	for pkg, want := range map[string]model.Category{
		"firefox":   model.CategoryBrowsers,
		"0ad":       model.CategoryGaming,
		"geary":     model.CategoryEmail,
		"zim":       model.CategoryProductivity,
		"darktable": model.CategoryGraphics,
		"git":       model.CategoryTools,
	} {
		got, ok := table.Lookup(pkg)
		require.True(t, ok, pkg)
		assert.Equal(t, want, got, pkg)
	}
}
