package model

import (
	"fmt"
	"sort"
)

// RankedCategory is one category's accumulated score for a package.
type RankedCategory struct {
	Category Category `json:"category"`
	Score    Score    `json:"score"`
	Reasons  []string `json:"reasons"`
}

// Validate ensures the RankedCategory has valid data.
func (r *RankedCategory) Validate() error {
	if !r.Category.IsValid() {
		return fmt.Errorf("unknown category %q", r.Category)
	}
	if r.Score < 0 {
		return fmt.Errorf("score must not be negative, got %.2f", float64(r.Score))
	}
	return nil
}

// RankedCategories is a slice of RankedCategory that supports ranking.
type RankedCategories []RankedCategory

// Sort orders by score descending. Equal scores keep their evaluation order.
func (r RankedCategories) Sort() {
	sort.SliceStable(r, func(i, j int) bool {
		return r[i].Score > r[j].Score
	})
}

// Top returns the highest-scoring category, or nil if empty.
// The receiver must already be sorted.
func (r RankedCategories) Top() *RankedCategory {
	if len(r) == 0 {
		return nil
	}
	return &r[0]
}

// Runners returns up to n entries following the top one.
// The receiver must already be sorted.
func (r RankedCategories) Runners(n int) RankedCategories {
	if n <= 0 || len(r) <= 1 {
		return RankedCategories{}
	}
	rest := r[1:]
	if n > len(rest) {
		n = len(rest)
	}
	result := make(RankedCategories, n)
	copy(result, rest[:n])
	return result
}

// Validate ensures all rankings are valid and unique.
func (r RankedCategories) Validate() error {
	seen := make(map[Category]bool)

	for i, ranking := range r {
		if err := ranking.Validate(); err != nil {
			return fmt.Errorf("invalid ranking at index %d: %w", i, err)
		}
		if seen[ranking.Category] {
			return fmt.Errorf("duplicate category %q in rankings", ranking.Category)
		}
		seen[ranking.Category] = true
	}

	return nil
}
