package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newsdeskapp/newsdesk-server/internal/http/response"
	"github.com/newsdeskapp/newsdesk-server/internal/service"
)

// handleCreateCategory creates a new category.
func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req service.CategoryRequest
	if err := decodeRequest(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	cat, err := s.categoryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, cat, "category is successfully created", s.logger)
}

// handleListCategories returns one page of categories.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cats, meta, err := s.categoryService.List(r.Context(), q.Get("page"), q.Get("size"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Paginated(w, cats, meta, "list of categories", s.logger)
}

// handleGetCategory returns a single category by ID.
func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := s.categoryService.Get(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, cat, "detail category", s.logger)
}

// handleUpdateCategory replaces the writable fields of a category.
func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req service.CategoryRequest
	if err := decodeRequest(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	cat, err := s.categoryService.Update(r.Context(), chi.URLParam(r, "categoryId"), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, cat, "category is successfully updated", s.logger)
}

// handleDeleteCategory tombstones a category.
func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.categoryService.Delete(r.Context(), chi.URLParam(r, "categoryId")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, nil, "category is successfully deleted", s.logger)
}
