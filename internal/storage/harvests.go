package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/geektoshi/nebula-harvest/internal/model"
)

// HarvestRun is one stored artifact header.
type HarvestRun struct {
	GeneratedAt      string
	ID               int64
	TotalPackages    int
	OverridesApplied int
}

// SaveHarvest stores out as a new run and returns its id. The write is atomic.
// A package name repeated within out keeps its first suggestion.
func (s *SQLiteStorage) SaveHarvest(ctx context.Context, out *model.HarvestOutput) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateOutput(out); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO harvest_runs (generated_at, total_packages, overrides_applied)
		VALUES (?, ?, ?)`,
		out.Metadata.GeneratedAt, out.Metadata.TotalPackages, out.Metadata.OverridesApplied)
	if err != nil {
		return 0, fmt.Errorf("failed to insert harvest run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	suggestionStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO suggestions
			(run_id, pkgname, category, score, override_applied, reasons, short_desc, homepage, template_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (run_id, pkgname) DO NOTHING`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare suggestion insert: %w", err)
	}
	defer func() { _ = suggestionStmt.Close() }()

	altStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO alternatives (run_id, pkgname, rank, category, score, reasons)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare alternative insert: %w", err)
	}
	defer func() { _ = altStmt.Close() }()

	for i := range out.Packages {
		p := &out.Packages[i]
		reasons, err := encodeReasons(p.Reasons)
		if err != nil {
			return 0, err
		}

		res, err := suggestionStmt.ExecContext(ctx,
			runID, p.PkgName, string(p.Category), scoreValue(p.Score), p.OverrideApplied,
			reasons, p.ShortDesc, p.Homepage, p.TemplatePath)
		if err != nil {
			return 0, fmt.Errorf("failed to insert suggestion %s: %w", p.PkgName, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			slog.Warn("Skipping duplicate package in harvest", "pkgname", p.PkgName)
			continue
		}

		for rank, alt := range p.Alternatives {
			altReasons, err := encodeReasons(alt.Reasons)
			if err != nil {
				return 0, err
			}
			if _, err := altStmt.ExecContext(ctx,
				runID, p.PkgName, rank, string(alt.Category), float64(alt.Score), altReasons); err != nil {
				return 0, fmt.Errorf("failed to insert alternative for %s: %w", p.PkgName, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit harvest: %w", err)
	}

	slog.Debug("Stored harvest run", "run_id", runID, "packages", len(out.Packages))
	return runID, nil
}

// LatestRun returns the most recently stored run.
func (s *SQLiteStorage) LatestRun(ctx context.Context) (*HarvestRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var run HarvestRun
	err := s.db.QueryRowContext(ctx, `
		SELECT id, generated_at, total_packages, overrides_applied
		FROM harvest_runs ORDER BY id DESC LIMIT 1`).
		Scan(&run.ID, &run.GeneratedAt, &run.TotalPackages, &run.OverridesApplied)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no harvest runs", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}
	return &run, nil
}

// CategoryCounts returns per-category package counts for a run, sorted by
// category name.
func (s *SQLiteStorage) CategoryCounts(ctx context.Context, runID int64) ([]model.SummaryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*)
		FROM suggestions
		WHERE run_id = ?
		GROUP BY category
		ORDER BY category`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts []model.SummaryEntry
	for rows.Next() {
		var entry model.SummaryEntry
		var category string
		if err := rows.Scan(&category, &entry.Packages); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		entry.Category = model.Category(category)
		counts = append(counts, entry)
	}
	return counts, rows.Err()
}

// GetSuggestion loads one stored suggestion with its alternatives.
func (s *SQLiteStorage) GetSuggestion(ctx context.Context, runID int64, pkgname string) (*model.PackageSuggestion, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(pkgname, "pkgname"); err != nil {
		return nil, err
	}

	var (
		p         model.PackageSuggestion
		category  string
		score     sql.NullFloat64
		reasons   string
		shortDesc sql.NullString
		homepage  sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT pkgname, category, score, override_applied, reasons, short_desc, homepage, template_path
		FROM suggestions
		WHERE run_id = ? AND pkgname = ?`, runID, pkgname).
		Scan(&p.PkgName, &category, &score, &p.OverrideApplied, &reasons, &shortDesc, &homepage, &p.TemplatePath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: package %s in run %d", ErrNotFound, pkgname, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestion: %w", err)
	}

	p.Category = model.Category(category)
	p.Score = scoreFrom(score)
	if p.Reasons, err = decodeReasons(reasons); err != nil {
		return nil, err
	}
	if shortDesc.Valid {
		p.ShortDesc = &shortDesc.String
	}
	if homepage.Valid {
		p.Homepage = &homepage.String
	}

	if p.Alternatives, err = s.alternatives(ctx, runID, pkgname); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStorage) alternatives(ctx context.Context, runID int64, pkgname string) (model.RankedCategories, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, score, reasons
		FROM alternatives
		WHERE run_id = ? AND pkgname = ?
		ORDER BY rank`, runID, pkgname)
	if err != nil {
		return nil, fmt.Errorf("failed to query alternatives: %w", err)
	}
	defer func() { _ = rows.Close() }()

	alts := model.RankedCategories{}
	for rows.Next() {
		var (
			alt      model.RankedCategory
			category string
			score    float64
			reasons  string
		)
		if err := rows.Scan(&category, &score, &reasons); err != nil {
			return nil, fmt.Errorf("failed to scan alternative: %w", err)
		}
		alt.Category = model.Category(category)
		alt.Score = model.Score(score)
		if alt.Reasons, err = decodeReasons(reasons); err != nil {
			return nil, err
		}
		alts = append(alts, alt)
	}
	return alts, rows.Err()
}

// scoreValue stores the override sentinel as NULL.
func scoreValue(score model.Score) any {
	if score.IsForced() {
		return nil
	}
	return float64(score)
}

func scoreFrom(v sql.NullFloat64) model.Score {
	if !v.Valid {
		return model.ForcedScore
	}
	return model.Score(v.Float64)
}

func encodeReasons(reasons []string) (string, error) {
	if reasons == nil {
		reasons = []string{}
	}
	data, err := json.Marshal(reasons)
	if err != nil {
		return "", fmt.Errorf("failed to encode reasons: %w", err)
	}
	return string(data), nil
}

func decodeReasons(data string) ([]string, error) {
	reasons := []string{}
	if err := json.Unmarshal([]byte(data), &reasons); err != nil {
		return nil, fmt.Errorf("failed to decode reasons: %w", err)
	}
	return reasons, nil
}
