// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// CategorySuggester defines the interface for an optional AI-backed category
// suggestion service. It is consulted only when the static suggestion table
// has no entry for an item name; any failure degrades to the deterministic
// first-category fallback.
type CategorySuggester interface {
	// SuggestCategory returns the name of the category that best fits the
	// given item name. The returned name is only used when it matches one
	// of the canonical category entries.
	SuggestCategory(ctx context.Context, itemName string) (string, error)

	// IsAvailable checks if the suggester is configured and usable.
	IsAvailable() bool
}
