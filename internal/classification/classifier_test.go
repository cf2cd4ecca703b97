package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geektoshi/nebula-harvest/internal/model"
)

type staticOverrides map[string]model.Category

func (s staticOverrides) Lookup(name string) (model.Category, bool) {
	c, ok := s[name]
	return c, ok
}

func newDefault(t *testing.T, overrides OverrideLookup) *Classifier {
	t.Helper()
	c, err := NewDefaultClassifier(overrides)
	require.NoError(t, err)
	return c
}

func TestNewClassifier(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		specs   []model.CategorySpec
		wantErr bool
	}{
		{
			name:  "default table",
			specs: DefaultSpecs(),
		},
		{
			name:  "empty table",
			specs: nil,
		},
		{
			name: "duplicate category",
			specs: []model.CategorySpec{
				{Name: model.CategoryBooks, Rules: []model.Rule{model.NameRule("a", 1)}, Floor: 1},
				{Name: model.CategoryBooks, Rules: []model.Rule{model.NameRule("b", 1)}, Floor: 1},
			},
			wantErr: true,
			errMsg:  "duplicate category spec",
		},
		{
			name:    "unknown category",
			specs:   []model.CategorySpec{{Name: "Spreadsheets", Floor: 1}},
			wantErr: true,
			errMsg:  "unknown category",
		},
		{
			name: "fallback with rules",
			specs: []model.CategorySpec{
				{Name: model.FallbackCategory, Rules: []model.Rule{model.NameRule("x", 1)}},
			},
			wantErr: true,
			errMsg:  "must have no rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassifier(tt.specs, nil)
			if tt.wantErr {
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaultSpecs_CoverClosedSet(t *testing.T) {
	specs := DefaultSpecs()
	names := make([]model.Category, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}
	assert.ElementsMatch(t, model.AllCategories(), names)

	c := newDefault(t, nil)
	for _, spec := range c.specs {
		assert.NotEqual(t, model.FallbackCategory, spec.Name, "fallback must not be scored")
	}
}

func TestClassify_BrowserExample(t *testing.T) {
	c := newDefault(t, nil)

	s := c.Classify(model.PackageRecord{
		Name:             "firefox-esr",
		ShortDescription: "A web browser",
		SourcePath:       "firefox-esr",
	})

	assert.Equal(t, model.CategoryBrowsers, s.Category)
	assert.False(t, s.OverrideApplied)
	assert.Equal(t, model.Score(17), s.Score)
	assert.Equal(t, []string{
		"short_desc contains 'web browser'",
		"short_desc contains 'browser'",
		"pkgname contains 'firefox'",
	}, s.Reasons)
	assert.Empty(t, s.Alternatives)
	require.NotNil(t, s.ShortDesc)
	assert.Equal(t, "A web browser", *s.ShortDesc)
	assert.Nil(t, s.Homepage)
}

func TestClassify_NoMatchFallsBack(t *testing.T) {
	c := newDefault(t, nil)

	s := c.Classify(model.PackageRecord{
		Name:         "zzz-unknown",
		Dependencies: []string{"glibc"},
		SourcePath:   "srcpkgs/zzz-unknown",
	})

	assert.Equal(t, model.FallbackCategory, s.Category)
	assert.Equal(t, model.Score(0), s.Score)
	assert.Equal(t, []string{ReasonNoMatch}, s.Reasons)
	assert.NotNil(t, s.Alternatives)
	assert.Empty(t, s.Alternatives)
	assert.Nil(t, s.ShortDesc)
}

func TestClassify_BelowFloorIsNotCandidate(t *testing.T) {
	c := newDefault(t, nil)

	// "reader" alone is worth 3.5 for Books, below its 4.5 floor.
	s := c.Classify(model.PackageRecord{Name: "pdfthing", ShortDescription: "Simple reader"})
	assert.Equal(t, model.FallbackCategory, s.Category)

	// The homepage selector has no rules in the default table.
	s = c.Classify(model.PackageRecord{Name: "x", Homepage: "https://calibre-ebook.com"})
	assert.Equal(t, model.FallbackCategory, s.Category)
}

func TestClassify_ListSelectorsCountOnce(t *testing.T) {
	specs := []model.CategorySpec{
		{
			Name:  model.CategoryGaming,
			Rules: []model.Rule{model.DependsRule("sdl", 4.0)},
			Floor: 4.0,
		},
	}
	c, err := NewClassifier(specs, nil)
	require.NoError(t, err)

	s := c.Classify(model.PackageRecord{
		Name:         "game",
		Dependencies: []string{"SDL2-devel", "SDL2_mixer-devel", "sdl2_image"},
	})

	assert.Equal(t, model.CategoryGaming, s.Category)
	assert.Equal(t, model.Score(4), s.Score)
	assert.Equal(t, []string{"dependencies contains 'sdl'"}, s.Reasons)
}

func TestClassify_DeclaredCategoriesAndMaintainer(t *testing.T) {
	specs := []model.CategorySpec{
		{
			Name: model.CategoryNews,
			Rules: []model.Rule{
				model.DeclaredCategoryRule("News", 3),
				model.MaintainerRule("@feeds.example", 2),
				model.HomepageRule("rss", 1),
			},
			Floor: 5,
		},
	}
	c, err := NewClassifier(specs, nil)
	require.NoError(t, err)

	s := c.Classify(model.PackageRecord{
		Name:               "reader",
		DeclaredCategories: []string{"net", "news"},
		Maintainer:         "Ann <ann@FEEDS.example>",
	})
	assert.Equal(t, model.CategoryNews, s.Category)
	assert.Equal(t, model.Score(5), s.Score)
	assert.Equal(t, []string{
		"template category contains 'news'",
		"maintainer contains '@feeds.example'",
	}, s.Reasons)
}

func TestClassify_Alternatives(t *testing.T) {
	c := newDefault(t, nil)

	// Six candidates: Music 18, Gaming 9, Development 8.5, Video 6, System 4, Tools 4.
	s := c.Classify(model.PackageRecord{
		Name:             "mixplayer",
		ShortDescription: "Music and video game system tool and compiler for development",
		Dependencies:     []string{"alsa-lib", "sdl2"},
	})

	assert.Equal(t, model.CategoryMusic, s.Category)
	assert.Equal(t, model.Score(18), s.Score)
	require.Len(t, s.Alternatives, MaxAlternatives)
	for _, alt := range s.Alternatives {
		assert.LessOrEqual(t, float64(alt.Score), float64(s.Score))
		assert.NotEqual(t, s.Category, alt.Category)
	}
	for i := 1; i < len(s.Alternatives); i++ {
		assert.GreaterOrEqual(t, float64(s.Alternatives[i-1].Score), float64(s.Alternatives[i].Score))
	}
	assert.Equal(t, []model.Category{
		model.CategoryGaming,
		model.CategoryDevelopment,
		model.CategoryVideo,
		model.CategorySystem,
	}, []model.Category{
		s.Alternatives[0].Category,
		s.Alternatives[1].Category,
		s.Alternatives[2].Category,
		s.Alternatives[3].Category,
	})
}

func TestClassify_TiesKeepDeclarationOrder(t *testing.T) {
	specs := []model.CategorySpec{
		{Name: model.CategoryVideo, Rules: []model.Rule{model.NameRule("media", 5)}, Floor: 1},
		{Name: model.CategoryMusic, Rules: []model.Rule{model.NameRule("media", 5)}, Floor: 1},
	}
	c, err := NewClassifier(specs, nil)
	require.NoError(t, err)

	for range 20 {
		s := c.Classify(model.PackageRecord{Name: "mediabox"})
		assert.Equal(t, model.CategoryVideo, s.Category)
		require.Len(t, s.Alternatives, 1)
		assert.Equal(t, model.CategoryMusic, s.Alternatives[0].Category)
	}
}

func TestClassify_OverrideWins(t *testing.T) {
	c := newDefault(t, staticOverrides{"firefox-esr": model.CategoryOffice})

	s := c.Classify(model.PackageRecord{
		Name:             "firefox-esr",
		ShortDescription: "A web browser",
		Homepage:         "https://mozilla.org",
	})

	assert.Equal(t, model.CategoryOffice, s.Category)
	assert.True(t, s.OverrideApplied)
	assert.True(t, s.Score.IsForced())
	assert.Equal(t, []string{"override → Office"}, s.Reasons)
	assert.NotNil(t, s.Alternatives)
	assert.Empty(t, s.Alternatives)
	require.NotNil(t, s.Homepage)
	assert.Equal(t, "https://mozilla.org", *s.Homepage)
}

func TestClassify_Deterministic(t *testing.T) {
	c := newDefault(t, nil)
	rec := model.PackageRecord{
		Name:             "kernel-tools",
		ShortDescription: "Linux kernel system utility",
		SourcePath:       "linux-tools",
	}

	first := c.Classify(rec)
	for range 10 {
		assert.Equal(t, first, c.Classify(rec))
	}
	assert.Equal(t, model.CategoryKernels, first.Category)
}

func TestRank_Empty(t *testing.T) {
	winner, alts := Rank(nil)
	assert.Equal(t, model.FallbackCategory, winner.Category)
	assert.Equal(t, model.Score(0), winner.Score)
	assert.Empty(t, alts)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := model.RankedCategories{
		{Category: model.CategoryBooks, Score: 5},
		{Category: model.CategoryChat, Score: 9},
	}
	winner, alts := Rank(in)

	assert.Equal(t, model.CategoryChat, winner.Category)
	require.Len(t, alts, 1)
	assert.Equal(t, model.CategoryBooks, in[0].Category)
}
