// Package search provides full-text article search backed by Bleve.
package search

import (
	"github.com/newsdeskapp/newsdesk-server/internal/domain"
)

// ArticleDocument is the indexed projection of an article.
// Only what search needs goes in; the store stays the source of truth.
type ArticleDocument struct {
	ID          string
	Title       string
	Description string
	CategoryID  string
	CreatedAt   int64 // Unix seconds, for recency sorting
}

// NewArticleDocument projects an article into its indexable form.
func NewArticleDocument(a *domain.Article) *ArticleDocument {
	return &ArticleDocument{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		CategoryID:  a.CategoryID,
		CreatedAt:   a.CreatedAt.Unix(),
	}
}

// ToMap converts the document to a map so field names match the index
// mapping (lowercase) regardless of struct field naming.
func (d *ArticleDocument) ToMap() map[string]any {
	return map[string]any{
		"id":          d.ID,
		"title":       d.Title,
		"description": d.Description,
		"category_id": d.CategoryID,
		"created_at":  d.CreatedAt,
	}
}
