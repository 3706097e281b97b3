package domain

// Article is a single news item. CategoryID must point at a live category
// when the article is created or updated; after that the link is never
// re-checked, so an article can outlive its category.
type Article struct {
	Resource
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
}

// Category returns the article's parent reference.
func (a *Article) Category() CategoryRef {
	return CategoryRef(a.CategoryID)
}
