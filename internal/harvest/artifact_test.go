package harvest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/model"
)

func sampleOutput() model.HarvestOutput {
	desc := "A web browser"
	return BuildOutput([]model.PackageSuggestion{
		{
			PkgName:      "firefox-esr",
			Category:     model.CategoryBrowsers,
			Score:        17,
			Reasons:      []string{"pkgname contains 'firefox'"},
			Alternatives: model.RankedCategories{{Category: model.CategoryTools, Score: 4, Reasons: []string{"short_desc contains 'cli'"}}},
			ShortDesc:    &desc,
			TemplatePath: "firefox-esr",
		},
		{
			PkgName:         "gimp",
			Category:        model.CategoryPhotos,
			Score:           model.ForcedScore,
			OverrideApplied: true,
			Reasons:         []string{"override → Photos"},
			Alternatives:    model.RankedCategories{},
			TemplatePath:    "gimp",
		},
	}, 1, time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC))
}

func TestWriteArtifact_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "generated", "category_suggestions.json")
	want := sampleOutput()

	require.NoError(t, WriteArtifact(path, want))

	got, err := ReadArtifact(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("artifact round trip mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriteArtifact_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteArtifact(path, sampleOutput()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw struct {
		Metadata map[string]json.RawMessage `json:"metadata"`
		Packages []map[string]json.RawMessage
	}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.JSONEq(t, `"2026-10-19T08:00:00Z"`, string(raw.Metadata["generated_at"]))
	assert.JSONEq(t, `2`, string(raw.Metadata["total_packages"]))
	assert.JSONEq(t, `1`, string(raw.Metadata["overrides_applied"]))
	assert.JSONEq(t, `[{"category":"Browsers","packages":1},{"category":"Photos","packages":1}]`, string(raw.Metadata["summary"]))

	require.Len(t, raw.Packages, 2)
	firefox, gimp := raw.Packages[0], raw.Packages[1]
	assert.JSONEq(t, `17`, string(firefox["score"]))
	assert.JSONEq(t, `"A web browser"`, string(firefox["short_desc"]))
	assert.JSONEq(t, `null`, string(firefox["homepage"]))
	assert.JSONEq(t, `"inf"`, string(gimp["score"]))
	assert.JSONEq(t, `true`, string(gimp["override_applied"]))
	assert.JSONEq(t, `[]`, string(gimp["alternatives"]))
	for _, key := range []string{"pkgname", "category", "score", "override_applied", "reasons", "alternatives", "short_desc", "homepage", "template_path"} {
		assert.Contains(t, firefox, key)
	}
}

func TestWriteArtifact_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	err := WriteArtifact(filepath.Join(blocker, "generated", "out.json"), sampleOutput())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrWriteArtifact)
	assert.Contains(t, err.Error(), "failed to create output directory")
}

func TestWriteArtifact_KeepsPreviousOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o600))

	bad := sampleOutput()
	bad.Packages[0].Score = model.Score(-1) * model.ForcedScore // -Inf is not encodable

	require.Error(t, WriteArtifact(path, bad))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestReadArtifact_Errors(t *testing.T) {
	_, err := ReadArtifact(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read artifact")

	_, err = DecodeArtifact([]byte("{not json"))
	assert.ErrorContains(t, err, "failed to decode artifact")
}

func TestDecodeArtifact_RejectsInvalidAlternatives(t *testing.T) {
	tests := []struct {
		name string
		alts string
		want string
	}{
		{
			name: "unknown category",
			alts: `[{"category": "Bogus", "score": 3, "reasons": []}]`,
			want: `unknown category "Bogus"`,
		},
		{
			name: "negative score",
			alts: `[{"category": "Tools and Utilities", "score": -1, "reasons": []}]`,
			want: "score must not be negative",
		},
		{
			name: "duplicate category",
			alts: `[{"category": "Video", "score": 5, "reasons": []}, {"category": "Video", "score": 4, "reasons": []}]`,
			want: `duplicate category "Video"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`{"metadata": {"generated_at": "2026-10-19T08:00:00Z", "total_packages": 1, "overrides_applied": 0, "summary": []},
				"packages": [{"pkgname": "mpv", "category": "Music", "score": 8, "override_applied": false,
				"reasons": [], "alternatives": ` + tt.alts + `, "short_desc": null, "homepage": null, "template_path": "mpv"}]}`)

			_, err := DecodeArtifact(data)
			require.Error(t, err)
			assert.ErrorContains(t, err, "package mpv")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
