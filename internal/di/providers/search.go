package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/newsdeskapp/newsdesk-server/internal/config"
	"github.com/newsdeskapp/newsdesk-server/internal/logger"
	"github.com/newsdeskapp/newsdesk-server/internal/search"
	"github.com/newsdeskapp/newsdesk-server/internal/service"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.ArticleIndex
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the Bleve article index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewArticleIndex(search.Options{
		DataPath: cfg.Data.BasePath,
		Logger:   log.Logger,
	})
	if err != nil {
		return nil, err
	}

	docCount, _ := index.DocumentCount()
	log.Info("Search index initialized", "documents", docCount)

	return &SearchIndexHandle{ArticleIndex: index}, nil
}

// TriggerSearchReindex rebuilds the article index from the store.
// Should be called after all services are wired.
func TriggerSearchReindex(i do.Injector) {
	log := do.MustInvoke[*logger.Logger](i)
	articleService := do.MustInvoke[*service.ArticleService](i)

	go func() {
		if err := articleService.Reindex(context.Background()); err != nil {
			log.Error("Search reindex failed", "error", err)
		}
	}()
}
