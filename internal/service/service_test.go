package service_test

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/newsdeskapp/newsdesk-server/internal/auth"
	"github.com/newsdeskapp/newsdesk-server/internal/search"
	"github.com/newsdeskapp/newsdesk-server/internal/service"
	"github.com/newsdeskapp/newsdesk-server/internal/store"
)

type testEnv struct {
	store      *store.Store
	tokens     *auth.TokenService
	auths      *service.AuthService
	categories *service.CategoryService
	articles   *service.ArticleService
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	logger := slog.New(slog.DiscardHandler)

	s, err := store.New(filepath.Join(dir, "db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	keyHex, err := auth.LoadOrGenerateKey(dir)
	require.NoError(t, err)
	tokens, err := auth.NewTokenService(keyHex, time.Hour)
	require.NoError(t, err)

	idx, err := search.NewArticleIndex(search.Options{DataPath: dir, Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	categories := service.NewCategoryService(s, logger)
	articles := service.NewArticleService(s, categories, idx, logger)
	auths := service.NewAuthService(s, tokens, logger)

	return &testEnv{
		store:      s,
		tokens:     tokens,
		auths:      auths,
		categories: categories,
		articles:   articles,
	}
}
