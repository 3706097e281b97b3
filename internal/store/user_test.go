package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeskapp/newsdesk-server/internal/domain"
	"github.com/newsdeskapp/newsdesk-server/internal/store"
)

func newUser(id, email string) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$argon2id$fake",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateUser_AndGet(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, s.CreateUser(ctx, newUser("user-1", "ada@example.com")))

	got, err := s.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, s.CreateUser(ctx, newUser("user-1", "ada@example.com")))

	err := s.CreateUser(ctx, newUser("user-2", "ada@example.com"))
	assert.ErrorIs(t, err, store.ErrEmailExists)

	// Case and whitespace don't dodge the index.
	err = s.CreateUser(ctx, newUser("user-3", "  ADA@Example.Com "))
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestGetUserByEmail(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, s.CreateUser(ctx, newUser("user-1", "ada@example.com")))

	got, err := s.GetUserByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestGetUser_Missing(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	u := newUser("user-1", "ada@example.com")
	require.NoError(t, s.CreateUser(ctx, u))

	u.LastLoginAt = time.Now()
	require.NoError(t, s.UpdateUser(ctx, u))

	got, err := s.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, got.LastLoginAt.IsZero())

	err = s.UpdateUser(ctx, newUser("ghost", "ghost@example.com"))
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
