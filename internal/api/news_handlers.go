package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/newsdeskapp/newsdesk-server/internal/http/response"
	"github.com/newsdeskapp/newsdesk-server/internal/service"
)

// handleCreateNews creates a new article.
func (s *Server) handleCreateNews(w http.ResponseWriter, r *http.Request) {
	var req service.ArticleRequest
	if err := decodeRequest(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	art, err := s.articleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, art, "news is successfully created", s.logger)
}

// handleListNews returns one page of articles.
func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	articles, meta, err := s.articleService.List(r.Context(), q.Get("page"), q.Get("size"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Paginated(w, articles, meta, "list of news", s.logger)
}

// handleGetNews returns a single article by ID.
func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	art, err := s.articleService.Get(r.Context(), chi.URLParam(r, "newsId"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, art, "detail news", s.logger)
}

// handleUpdateNews merges the provided fields over an article.
func (s *Server) handleUpdateNews(w http.ResponseWriter, r *http.Request) {
	var req service.ArticleRequest
	if err := decodeRequest(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	art, err := s.articleService.Update(r.Context(), chi.URLParam(r, "newsId"), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, art, "news is successfully updated", s.logger)
}

// handleDeleteNews tombstones an article.
func (s *Server) handleDeleteNews(w http.ResponseWriter, r *http.Request) {
	if err := s.articleService.Delete(r.Context(), chi.URLParam(r, "newsId")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, nil, "news is successfully deleted", s.logger)
}

// handleSearchNews runs a full-text query over the articles.
func (s *Server) handleSearchNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	result, err := s.articleService.Search(r.Context(), q.Get("q"), q.Get("category_id"), limit, offset)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, "search results", s.logger)
}
