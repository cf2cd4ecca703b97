// Package storage persists harvest results in SQLite for reporting.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geektoshi/nebula-harvest/internal/model"
)

// Validation and lookup errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrNilParameter      = errors.New("parameter cannot be nil")
	ErrInvalidSuggestion = errors.New("invalid suggestion")
	ErrNotFound          = errors.New("not found")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateOutput checks every suggestion before anything is written.
func validateOutput(out *model.HarvestOutput) error {
	if out == nil {
		return fmt.Errorf("%w: output", ErrNilParameter)
	}
	for i := range out.Packages {
		if err := validateSuggestion(&out.Packages[i]); err != nil {
			return fmt.Errorf("suggestion at index %d: %w", i, err)
		}
	}
	return nil
}

func validateSuggestion(s *model.PackageSuggestion) error {
	if strings.TrimSpace(s.PkgName) == "" {
		return fmt.Errorf("%w: empty pkgname", ErrInvalidSuggestion)
	}
	if !s.Category.IsValid() {
		return fmt.Errorf("%w: %s has unknown category %q", ErrInvalidSuggestion, s.PkgName, s.Category)
	}
	if s.Score.IsForced() != s.OverrideApplied {
		return fmt.Errorf("%w: %s score %s disagrees with override flag", ErrInvalidSuggestion, s.PkgName, s.Score)
	}
	return nil
}
