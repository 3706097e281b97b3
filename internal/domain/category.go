package domain

import (
	"regexp"
	"strings"
)

// Category is a node in the news taxonomy. Articles reference a category
// by ID; the category itself carries no back-references, so deleting one
// never touches the articles filed under it.
type Category struct {
	Resource
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryRef identifies a category from another collection. Holders of a
// ref must resolve it and check the target is still active before trusting
// it; the ref itself proves nothing about the category's existence.
type CategoryRef string

// ID returns the referenced category's public ID.
func (r CategoryRef) ID() string {
	return string(r)
}

var (
	// Matches spaces, underscores, and slashes (for replacement with dashes).
	wordSeparatorRe = regexp.MustCompile(`[\s_/]+`)
	// Matches non-alphanumeric characters (except dashes).
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	// Matches multiple consecutive dashes.
	multipleDashRe = regexp.MustCompile(`-+`)
)

// NormalizeSlug converts a category name to its canonical slug form.
//
// Normalization rules:
//  1. Trim whitespace and lowercase
//  2. Replace spaces, underscores and slashes with dashes
//  3. Remove non-alphanumeric characters (except dashes)
//  4. Collapse multiple dashes
//  5. Trim leading/trailing dashes
//
// Examples:
//
//	"World News"   → "world-news"
//	"Sci/Tech"     → "sci-tech"
//	"  Économie "  → "conomie"
func NormalizeSlug(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
