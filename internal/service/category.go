package service

import (
	"context"
	"log/slog"

	"github.com/newsdeskapp/newsdesk-server/internal/domain"
	domainerrors "github.com/newsdeskapp/newsdesk-server/internal/errors"
	"github.com/newsdeskapp/newsdesk-server/internal/store"
)

// CategoryService manages the news taxonomy.
type CategoryService struct {
	ctrl   *Controller[domain.Category, *domain.Category]
	logger *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(s *store.Store, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		ctrl:   NewController(s.Categories, "category", logger),
		logger: logger,
	}
}

// CategoryRequest carries the writable category fields.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// Create validates the input and inserts a new category.
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (*domain.Category, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	cat := &domain.Category{
		Name: req.Name,
		Slug: domain.NormalizeSlug(req.Name),
	}
	if err := s.ctrl.Create(ctx, cat); err != nil {
		return nil, err
	}

	s.logger.Info("category created", "category_id", cat.ID, "slug", cat.Slug)
	return cat, nil
}

// Get returns an active category by ID.
func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.ctrl.Get(ctx, id)
}

// List returns one page of active categories.
func (s *CategoryService) List(ctx context.Context, rawPage, rawSize string) ([]*domain.Category, store.PageMeta, error) {
	return s.ctrl.List(ctx, rawPage, rawSize)
}

// Update merges the provided fields over an active category.
func (s *CategoryService) Update(ctx context.Context, id string, req CategoryRequest) (*domain.Category, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	cat, err := s.ctrl.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cat.Name = req.Name
	cat.Slug = domain.NormalizeSlug(req.Name)

	if err := s.ctrl.Save(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete tombstones a category. Articles filed under it are left alone;
// they keep referencing the tombstoned parent.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.ctrl.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("category deleted", "category_id", id)
	return nil
}

// ResolveActive is the referential check used by the article service:
// the referenced category must exist and not be tombstoned.
func (s *CategoryService) ResolveActive(ctx context.Context, ref domain.CategoryRef) (*domain.Category, error) {
	if ref.ID() == "" {
		return nil, domainerrors.NotFound("category not found")
	}
	return s.ctrl.Get(ctx, ref.ID())
}
