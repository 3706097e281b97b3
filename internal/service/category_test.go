package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/newsdeskapp/newsdesk-server/internal/errors"
	"github.com/newsdeskapp/newsdesk-server/internal/service"
)

func requireDomainError(t *testing.T, err error, code domainerrors.Code) *domainerrors.Error {
	t.Helper()

	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, code, derr.Code)
	return derr
}

func TestCategoryService_Create(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	cat, err := env.categories.Create(ctx, service.CategoryRequest{Name: "World News"})
	require.NoError(t, err)

	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "World News", cat.Name)
	assert.Equal(t, "world-news", cat.Slug)
	assert.False(t, cat.IsDeleted)
	assert.False(t, cat.CreatedAt.IsZero())
	assert.Nil(t, cat.UpdatedAt)

	got, err := env.categories.Get(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, cat.ID, got.ID)
}

func TestCategoryService_Create_Validation(t *testing.T) {
	env := setupServices(t)

	_, err := env.categories.Create(context.Background(), service.CategoryRequest{})
	derr := requireDomainError(t, err, domainerrors.CodeValidation)
	assert.Contains(t, derr.Message, "name")
}

func TestCategoryService_Get_Missing(t *testing.T) {
	env := setupServices(t)

	_, err := env.categories.Get(context.Background(), "no-such-id")
	derr := requireDomainError(t, err, domainerrors.CodeNotFound)
	assert.Equal(t, "category not found", derr.Message)
}

func TestCategoryService_Update(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	cat, err := env.categories.Create(ctx, service.CategoryRequest{Name: "Sports"})
	require.NoError(t, err)

	updated, err := env.categories.Update(ctx, cat.ID, service.CategoryRequest{Name: "World Sports"})
	require.NoError(t, err)
	assert.Equal(t, cat.ID, updated.ID, "identity never changes")
	assert.Equal(t, "World Sports", updated.Name)
	assert.Equal(t, "world-sports", updated.Slug)
	assert.NotNil(t, updated.UpdatedAt)

	got, err := env.categories.Get(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "World Sports", got.Name)
	assert.Equal(t, cat.CreatedAt.Unix(), got.CreatedAt.Unix(), "CreatedAt survives updates")
}

func TestCategoryService_DeleteIsTerminal(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	cat, err := env.categories.Create(ctx, service.CategoryRequest{Name: "Sports"})
	require.NoError(t, err)

	require.NoError(t, env.categories.Delete(ctx, cat.ID))

	// Reads report the tombstone as absent.
	_, err = env.categories.Get(ctx, cat.ID)
	requireDomainError(t, err, domainerrors.CodeNotFound)

	// Second delete fails, not succeeds.
	err = env.categories.Delete(ctx, cat.ID)
	requireDomainError(t, err, domainerrors.CodeNotFound)

	// Update after delete is rejected too.
	_, err = env.categories.Update(ctx, cat.ID, service.CategoryRequest{Name: "Resurrected"})
	requireDomainError(t, err, domainerrors.CodeNotFound)
}

func TestCategoryService_List(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := env.categories.Create(ctx, service.CategoryRequest{Name: fmt.Sprintf("Category %d", i)})
		require.NoError(t, err)
	}

	page, meta, err := env.categories.List(ctx, "1", "10")
	require.NoError(t, err)
	assert.Len(t, page, 10)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 10, meta.Size)
	assert.Equal(t, 2, meta.TotalPage)
	assert.Equal(t, 12, meta.TotalData)
	assert.Equal(t, "Category 12", page[0].Name, "newest first")

	page, meta, err = env.categories.List(ctx, "2", "10")
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, 2, meta.Page)
}

func TestCategoryService_List_ExcludesTombstones(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	keep, err := env.categories.Create(ctx, service.CategoryRequest{Name: "Keep"})
	require.NoError(t, err)
	gone, err := env.categories.Create(ctx, service.CategoryRequest{Name: "Gone"})
	require.NoError(t, err)

	require.NoError(t, env.categories.Delete(ctx, gone.ID))

	page, meta, err := env.categories.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, keep.ID, page[0].ID)
	assert.Equal(t, 1, meta.TotalData)
}

func TestCategoryService_List_EmptyPageIs404(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	// Empty collection.
	_, _, err := env.categories.List(ctx, "", "")
	derr := requireDomainError(t, err, domainerrors.CodeNotFound)
	assert.Equal(t, "category not found", derr.Message)

	// Page past the end.
	_, err = env.categories.Create(ctx, service.CategoryRequest{Name: "Only one"})
	require.NoError(t, err)

	_, _, err = env.categories.List(ctx, "5", "10")
	requireDomainError(t, err, domainerrors.CodeNotFound)
}

func TestCategoryService_List_PageZeroRejected(t *testing.T) {
	env := setupServices(t)

	_, _, err := env.categories.List(context.Background(), "0", "10")
	derr := requireDomainError(t, err, domainerrors.CodeValidation)
	assert.Equal(t, "page not allowed to be 0", derr.Message)
}
