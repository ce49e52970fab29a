// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// smartSuggestions is the fixed quick-add suggestion list shown to the user.
var smartSuggestions = [...]string{
	"Milk",
	"Bread",
	"Eggs",
	"Bananas",
	"Apples",
	"Chicken Breast",
	"Rice",
	"Pasta",
	"Tomatoes",
	"Onions",
	"Cheese",
	"Yogurt",
}

// suggestionCategories maps a lowercased suggestion to its category name.
var suggestionCategories = map[string]string{
	// Fruits & Vegetables
	"bananas":  "Fruits & Vegetables",
	"apples":   "Fruits & Vegetables",
	"tomatoes": "Fruits & Vegetables",
	"onions":   "Fruits & Vegetables",
	// Dairy & Eggs
	"milk":   "Dairy & Eggs",
	"cheese": "Dairy & Eggs",
	"yogurt": "Dairy & Eggs",
	"eggs":   "Dairy & Eggs",
	// Meat & Seafood
	"chicken breast": "Meat & Seafood",
	// Bakery
	"bread": "Bakery",
	// Pantry
	"rice":  "Pantry",
	"pasta": "Pantry",
}

// SmartSuggestions returns the quick-add suggestion list in display order.
func SmartSuggestions() []string {
	out := make([]string, len(smartSuggestions))
	copy(out, smartSuggestions[:])
	return out
}

// SuggestionCategoryName resolves a suggestion text to its category name
// via a trimmed, case-insensitive exact lookup.
func SuggestionCategoryName(text string) (string, bool) {
	name, ok := suggestionCategories[strings.ToLower(strings.TrimSpace(text))]
	return name, ok
}
