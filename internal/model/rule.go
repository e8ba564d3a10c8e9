// Package model defines the core data structures for the snapledger pipeline.
package model

import "time"

// CategoryRule maps a merchant keyword to a spending category.
//
// Rules are supplied to the classifier as a plain slice per call; the rule
// set is never cached or mutated by the pipeline. Multiple rules may share a
// keyword.
type CategoryRule struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Keyword   string    `json:"keyword"`
	Category  string    `json:"category"`
	ID        int       `json:"id"`
	Priority  int       `json:"priority"`
	IsRegex   bool      `json:"is_regex"`
	IsWeak    bool      `json:"is_weak"`
	Enabled   bool      `json:"enabled"`
}

// ClassificationResult is the outcome of matching a text against a rule set.
// An unmatched result is a valid outcome, not an error; callers map it to an
// "unclassified" bucket.
type ClassificationResult struct {
	RuleUsed *CategoryRule `json:"rule_used,omitempty"`
	Category string        `json:"category"`
	Matched  bool          `json:"matched"`
}
