package service

import (
	"context"
	"log/slog"

	"github.com/newsdeskapp/newsdesk-server/internal/domain"
	domainerrors "github.com/newsdeskapp/newsdesk-server/internal/errors"
	"github.com/newsdeskapp/newsdesk-server/internal/search"
	"github.com/newsdeskapp/newsdesk-server/internal/store"
)

// ArticleService manages news articles, their link to the taxonomy, and
// the search index that mirrors the active articles.
type ArticleService struct {
	ctrl       *Controller[domain.Article, *domain.Article]
	categories *CategoryService
	index      *search.ArticleIndex
	logger     *slog.Logger
}

// NewArticleService creates a new article service.
// index may be nil, in which case search stays disabled.
func NewArticleService(s *store.Store, categories *CategoryService, index *search.ArticleIndex, logger *slog.Logger) *ArticleService {
	return &ArticleService{
		ctrl:       NewController(s.Articles, "news", logger),
		categories: categories,
		index:      index,
		logger:     logger,
	}
}

// ArticleRequest carries the writable article fields.
// Title and the category link are mandatory on create; on update the text
// fields merge over the stored record when provided.
type ArticleRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Image       string `json:"image" validate:"omitempty,max=2048"`
	Description string `json:"description" validate:"omitempty,max=10000"`
	CategoryID  string `json:"category_id" validate:"required"`
}

// Create validates the input, checks the category link, and inserts a new
// article. A deleted or absent category rejects the create.
func (s *ArticleService) Create(ctx context.Context, req ArticleRequest) (*domain.Article, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	if _, err := s.categories.ResolveActive(ctx, domain.CategoryRef(req.CategoryID)); err != nil {
		return nil, err
	}

	art := &domain.Article{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if err := s.ctrl.Create(ctx, art); err != nil {
		return nil, err
	}

	s.indexArticle(art)
	s.logger.Info("article created", "news_id", art.ID, "category_id", art.CategoryID)
	return art, nil
}

// Get returns an active article by ID.
func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.ctrl.Get(ctx, id)
}

// List returns one page of active articles.
func (s *ArticleService) List(ctx context.Context, rawPage, rawSize string) ([]*domain.Article, store.PageMeta, error) {
	return s.ctrl.List(ctx, rawPage, rawSize)
}

// Update merges the provided fields over an active article. The category
// link is always re-checked against the taxonomy, whether or not the patch
// changes it, so an update can't smuggle a reference to a dead category.
func (s *ArticleService) Update(ctx context.Context, id string, req ArticleRequest) (*domain.Article, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	art, err := s.ctrl.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.ResolveActive(ctx, domain.CategoryRef(req.CategoryID)); err != nil {
		return nil, err
	}

	art.CategoryID = req.CategoryID
	if req.Title != "" {
		art.Title = req.Title
	}
	if req.Image != "" {
		art.Image = req.Image
	}
	if req.Description != "" {
		art.Description = req.Description
	}

	if err := s.ctrl.Save(ctx, art); err != nil {
		return nil, err
	}

	s.indexArticle(art)
	return art, nil
}

// Delete tombstones an article and drops it from the search index.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.ctrl.Delete(ctx, id); err != nil {
		return err
	}

	if s.index != nil {
		if err := s.index.DeleteDocument(id); err != nil {
			s.logger.Warn("failed to remove article from search index", "news_id", id, "error", err)
		}
	}
	s.logger.Info("article deleted", "news_id", id)
	return nil
}

// Search runs a full-text query over the active articles.
func (s *ArticleService) Search(ctx context.Context, query, categoryID string, limit, offset int) (*search.Result, error) {
	if s.index == nil {
		return nil, domainerrors.Internal("search is not available")
	}

	params := search.DefaultParams()
	params.Query = query
	params.CategoryID = categoryID
	if limit > 0 {
		params.Limit = limit
	}
	if offset > 0 {
		params.Offset = offset
	}

	result, err := s.index.Search(ctx, params)
	if err != nil {
		return nil, domainerrors.StoreUnavailable(err)
	}
	return result, nil
}

// Reindex rebuilds the search index from the active articles in the store.
// Called at startup so the index survives mapping changes and corruption.
func (s *ArticleService) Reindex(ctx context.Context) error {
	if s.index == nil {
		return nil
	}

	var docs []*search.ArticleDocument
	for art, err := range s.ctrl.coll.All(ctx) {
		if err != nil {
			return err
		}
		docs = append(docs, search.NewArticleDocument(art))
	}
	if err := s.index.IndexDocuments(docs); err != nil {
		return err
	}

	s.logger.Info("article search index rebuilt", "documents", len(docs))
	return nil
}

// indexArticle mirrors one article into the search index, logging instead
// of failing the write if indexing goes wrong.
func (s *ArticleService) indexArticle(art *domain.Article) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexDocument(search.NewArticleDocument(art)); err != nil {
		s.logger.Warn("failed to index article", "news_id", art.ID, "error", err)
	}
}
