// Package harvest runs the classification pipeline over a source-package
// tree and assembles the persisted artifact.
package harvest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/geektoshi/nebula-harvest/internal/classification"
	"github.com/geektoshi/nebula-harvest/internal/cli"
	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/model"
	"github.com/geektoshi/nebula-harvest/internal/override"
	"github.com/geektoshi/nebula-harvest/internal/srcpkg"
)

// Options configures one harvest run.
type Options struct {
	// Progress receives a progress bar while classifying; nil disables it.
	Progress io.Writer
	// Now stamps generated_at; nil uses time.Now.
	Now           func() time.Time
	SourceDir     string
	OverridesPath string
	OutputPath    string
	// Specs replaces the default rule table when non-nil.
	Specs   []model.CategorySpec
	Workers int
}

// Run loads overrides, harvests the tree, classifies every package and
// writes the artifact. It returns the written output. Any error aborts the
// run before the artifact is touched.
func Run(ctx context.Context, opts Options) (*model.HarvestOutput, error) {
	out, err := Classify(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := WriteArtifact(opts.OutputPath, *out); err != nil {
		return nil, err
	}

	common.LogInfo("Wrote harvest artifact", common.Fields{
		"path":              opts.OutputPath,
		"total_packages":    out.Metadata.TotalPackages,
		"overrides_applied": out.Metadata.OverridesApplied,
	})
	return out, nil
}

// Classify runs the pipeline without persisting the result.
func Classify(ctx context.Context, opts Options) (*model.HarvestOutput, error) {
	// Overrides are validated before any package is read.
	overrides, err := override.Load(opts.OverridesPath)
	if err != nil {
		return nil, err
	}

	specs := opts.Specs
	if specs == nil {
		specs = classification.DefaultSpecs()
	}
	classifier, err := classification.NewClassifier(specs, overrides)
	if err != nil {
		return nil, err
	}

	records, err := srcpkg.Harvest(ctx, opts.SourceDir)
	if err != nil {
		return nil, err
	}
	for _, name := range staleOverrides(overrides, records) {
		slog.Warn("Override names a package missing from the source tree", "package", name)
	}

	var progress func()
	if opts.Progress != nil {
		bar := cli.NewProgressBar(opts.Progress, len(records), "Classifying packages...")
		progress = func() { _ = bar.Add(1) }
	}

	start := time.Now()
	result, err := classifier.ClassifyBatch(ctx, records, opts.Workers, progress)
	if err != nil {
		return nil, fmt.Errorf("classification aborted: %w", err)
	}
	slog.Debug("Classified packages",
		"packages", len(result.Suggestions),
		"overrides_applied", result.OverridesApplied,
		"elapsed", time.Since(start))

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	out := BuildOutput(result.Suggestions, result.OverridesApplied, now())
	return &out, nil
}

// staleOverrides returns the overridden package names that no record carries,
// in sorted order.
func staleOverrides(overrides *override.Table, records []model.PackageRecord) []string {
	present := make(map[string]bool, len(records))
	for _, rec := range records {
		present[strings.ToLower(rec.Name)] = true
	}

	var stale []string
	for _, name := range overrides.Packages() {
		if !present[name] {
			stale = append(stale, name)
		}
	}
	return stale
}
