// Package api provides the HTTP API server and handlers for the Newsdesk application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/newsdeskapp/newsdesk-server/internal/auth"
	"github.com/newsdeskapp/newsdesk-server/internal/ratelimit"
	"github.com/newsdeskapp/newsdesk-server/internal/service"
	"github.com/newsdeskapp/newsdesk-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store           *store.Store
	tokenService    *auth.TokenService
	authService     *service.AuthService
	categoryService *service.CategoryService
	articleService  *service.ArticleService
	loginLimiter    *ratelimit.KeyedRateLimiter
	router          *chi.Mux
	logger          *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// loginLimiter may be nil to disable rate limiting on the credential endpoints.
func NewServer(
	store *store.Store,
	tokenService *auth.TokenService,
	authService *service.AuthService,
	categoryService *service.CategoryService,
	articleService *service.ArticleService,
	loginLimiter *ratelimit.KeyedRateLimiter,
	logger *slog.Logger,
) *Server {
	s := &Server{
		store:           store,
		tokenService:    tokenService,
		authService:     authService,
		categoryService: categoryService,
		articleService:  articleService,
		loginLimiter:    loginLimiter,
		router:          chi.NewRouter(),
		logger:          logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Registration (public, rate limited).
		r.Route("/users", func(r chi.Router) {
			r.Use(s.rateLimitByIP)
			r.Post("/", s.handleRegister)
		})

		// Login (public, rate limited) and profile (auth).
		r.Route("/auth", func(r chi.Router) {
			r.With(s.rateLimitByIP).Post("/", s.handleLogin)
			r.With(s.requireAuth).Get("/", s.handleProfile)
		})

		// Categories (require auth).
		r.Route("/categories", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.handleCreateCategory)
			r.Get("/", s.handleListCategories)
			r.Get("/{categoryId}", s.handleGetCategory)
			r.Put("/{categoryId}", s.handleUpdateCategory)
			r.Delete("/{categoryId}", s.handleDeleteCategory)
		})

		// News (require auth).
		r.Route("/news", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.handleCreateNews)
			r.Get("/", s.handleListNews)
			r.Get("/search", s.handleSearchNews)
			r.Get("/{newsId}", s.handleGetNews)
			r.Put("/{newsId}", s.handleUpdateNews)
			r.Delete("/{newsId}", s.handleDeleteNews)
		})
	})
}
