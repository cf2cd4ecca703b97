package classification

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/geektoshi/nebula-harvest/internal/model"
)

// BatchResult holds one suggestion per input record, in input order.
type BatchResult struct {
	Suggestions      []model.PackageSuggestion
	OverridesApplied int
}

// ClassifyBatch classifies records using up to workers goroutines.
// workers <= 0 uses GOMAXPROCS. The result does not depend on workers.
// progress, if non-nil, is called once per classified record and must be
// safe for concurrent use.
func (c *Classifier) ClassifyBatch(ctx context.Context, records []model.PackageRecord, workers int, progress func()) (BatchResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	suggestions := make([]model.PackageSuggestion, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			suggestions[i] = c.Classify(records[i])
			if progress != nil {
				progress()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{Suggestions: suggestions}
	for _, s := range suggestions {
		if s.OverrideApplied {
			result.OverridesApplied++
		}
	}
	return result, nil
}
