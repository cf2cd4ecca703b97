package srcpkg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/model"
)

// Harvest walks root and parses every template below it. Unreadable
// templates and templates without a pkgname are skipped. Symlinked package
// directories are not followed.
func Harvest(ctx context.Context, root string) ([]model.PackageRecord, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w at %s", common.ErrSourceTreeMissing, root)
	}

	var (
		records []model.PackageRecord
		skipped int
	)
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			slog.Debug("Skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || d.Name() != TemplateName || !d.Type().IsRegular() {
			return nil
		}

		rec, ok := parseFile(root, path)
		if !ok {
			skipped++
			return nil
		}
		records = append(records, rec)
		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			return nil, walkErr
		}
		return nil, fmt.Errorf("failed to walk %s: %w", root, walkErr)
	}

	slog.Info("Harvested templates", "root", root, "packages", len(records), "skipped", skipped)
	return records, nil
}

func parseFile(root, path string) (model.PackageRecord, bool) {
	raw, err := os.ReadFile(path) //nolint:gosec // path comes from walking the configured tree
	if err != nil {
		slog.Debug("Skipping unreadable template", "path", path, "error", err)
		return model.PackageRecord{}, false
	}

	rec, ok := ParseTemplate(string(raw), RelativeDir(root, path))
	if !ok {
		slog.Debug("Skipping template without pkgname", "path", path)
	}
	return rec, ok
}

// RelativeDir returns the slash-separated directory of path relative to root.
func RelativeDir(root, path string) string {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}
