package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeskapp/newsdesk-server/internal/domain"
	domainerrors "github.com/newsdeskapp/newsdesk-server/internal/errors"
	"github.com/newsdeskapp/newsdesk-server/internal/service"
)

func createCategory(t *testing.T, env *testEnv, name string) *domain.Category {
	t.Helper()

	cat, err := env.categories.Create(context.Background(), service.CategoryRequest{Name: name})
	require.NoError(t, err)
	return cat
}

func TestArticleService_Create(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	cat := createCategory(t, env, "Sports")

	art, err := env.articles.Create(ctx, service.ArticleRequest{
		Title:       "Championship final tonight",
		Image:       "https://example.com/final.jpg",
		Description: "The two best teams meet at last.",
		CategoryID:  cat.ID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, art.ID)
	assert.NotEqual(t, cat.ID, art.ID)
	assert.Equal(t, cat.ID, art.CategoryID)
	assert.Nil(t, art.UpdatedAt)
}

func TestArticleService_Create_AbsentCategory(t *testing.T) {
	env := setupServices(t)

	_, err := env.articles.Create(context.Background(), service.ArticleRequest{
		Title:      "Orphan story",
		CategoryID: "no-such-category",
	})
	derr := requireDomainError(t, err, domainerrors.CodeNotFound)
	assert.Equal(t, "category not found", derr.Message)
}

func TestArticleService_Create_TombstonedCategory(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	cat := createCategory(t, env, "Doomed")
	require.NoError(t, env.categories.Delete(ctx, cat.ID))

	_, err := env.articles.Create(ctx, service.ArticleRequest{
		Title:      "Late arrival",
		CategoryID: cat.ID,
	})
	derr := requireDomainError(t, err, domainerrors.CodeNotFound)
	assert.Equal(t, "category not found", derr.Message)
}

func TestArticleService_Update_MergesProvidedFields(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	cat := createCategory(t, env, "Sports")

	art, err := env.articles.Create(ctx, service.ArticleRequest{
		Title:       "Original title",
		Image:       "https://example.com/one.jpg",
		Description: "Original description",
		CategoryID:  cat.ID,
	})
	require.NoError(t, err)

	updated, err := env.articles.Update(ctx, art.ID, service.ArticleRequest{
		Title:      "New title",
		CategoryID: cat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "https://example.com/one.jpg", updated.Image, "absent fields keep their stored value")
	assert.Equal(t, "Original description", updated.Description)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestArticleService_Update_RejectsDeadCategory(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	cat := createCategory(t, env, "Sports")
	dead := createCategory(t, env, "Doomed")

	art, err := env.articles.Create(ctx, service.ArticleRequest{
		Title:      "Movable story",
		CategoryID: cat.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.categories.Delete(ctx, dead.ID))

	_, err = env.articles.Update(ctx, art.ID, service.ArticleRequest{
		Title:      "Movable story",
		CategoryID: dead.ID,
	})
	derr := requireDomainError(t, err, domainerrors.CodeNotFound)
	assert.Equal(t, "category not found", derr.Message)
}

func TestArticleService_NoCascadeOnCategoryDelete(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	cat := createCategory(t, env, "Sports")

	art, err := env.articles.Create(ctx, service.ArticleRequest{
		Title:      "Survivor",
		CategoryID: cat.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.categories.Delete(ctx, cat.ID))

	// The article stays readable and keeps its dangling reference.
	got, err := env.articles.Get(ctx, art.ID)
	require.NoError(t, err)
	assert.Equal(t, cat.ID, got.CategoryID)

	// While the category itself is gone.
	_, err = env.categories.Get(ctx, cat.ID)
	requireDomainError(t, err, domainerrors.CodeNotFound)
}

func TestArticleService_DeleteIsTerminal(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	cat := createCategory(t, env, "Sports")

	art, err := env.articles.Create(ctx, service.ArticleRequest{
		Title:      "Short lived",
		CategoryID: cat.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.articles.Delete(ctx, art.ID))

	err = env.articles.Delete(ctx, art.ID)
	derr := requireDomainError(t, err, domainerrors.CodeNotFound)
	assert.Equal(t, "news not found", derr.Message)

	_, err = env.articles.Update(ctx, art.ID, service.ArticleRequest{
		Title:      "Back from the dead",
		CategoryID: cat.ID,
	})
	requireDomainError(t, err, domainerrors.CodeNotFound)
}

func TestArticleService_SearchFollowsLifecycle(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	cat := createCategory(t, env, "Weather")

	art, err := env.articles.Create(ctx, service.ArticleRequest{
		Title:       "Heatwave breaks records",
		Description: "Coastal towns report record temperatures.",
		CategoryID:  cat.ID,
	})
	require.NoError(t, err)

	result, err := env.articles.Search(ctx, "heatwave", "", 10, 0)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, art.ID, result.Hits[0].ID)

	// Deleted articles drop out of search results.
	require.NoError(t, env.articles.Delete(ctx, art.ID))

	result, err = env.articles.Search(ctx, "heatwave", "", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, result.Hits)
}

func TestArticleService_Reindex(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	cat := createCategory(t, env, "Sports")

	for _, title := range []string{"Match report", "Transfer window shuts"} {
		_, err := env.articles.Create(ctx, service.ArticleRequest{Title: title, CategoryID: cat.ID})
		require.NoError(t, err)
	}

	require.NoError(t, env.articles.Reindex(ctx))

	result, err := env.articles.Search(ctx, "match", "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, result.Hits, 1)
}
