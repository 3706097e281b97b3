package providers

import (
	"github.com/samber/do/v2"

	"github.com/newsdeskapp/newsdesk-server/internal/auth"
	"github.com/newsdeskapp/newsdesk-server/internal/logger"
	"github.com/newsdeskapp/newsdesk-server/internal/service"
)

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, tokenService, log.Logger), nil
}

// ProvideCategoryService provides the category taxonomy service.
func ProvideCategoryService(i do.Injector) (*service.CategoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCategoryService(storeHandle.Store, log.Logger), nil
}

// ProvideArticleService provides the news article service.
func ProvideArticleService(i do.Injector) (*service.ArticleService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	categoryService := do.MustInvoke[*service.CategoryService](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewArticleService(storeHandle.Store, categoryService, indexHandle.ArticleIndex, log.Logger), nil
}
