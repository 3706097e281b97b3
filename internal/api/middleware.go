package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/newsdeskapp/newsdesk-server/internal/http/response"
)

type contextKey string

const userIDKey contextKey = "userID"

// requireAuth validates the bearer token and attaches the user ID to the
// request context. Requests without a token and requests with a bad token
// are both rejected with 401, with distinct messages.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.Unauthorized(w, "no token supplied", s.logger)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(w, "token invalid", s.logger)
			return
		}

		claims, err := s.tokenService.Verify(token)
		if err != nil {
			s.logger.Debug("token verification failed", "error", err)
			response.Unauthorized(w, "token invalid", s.logger)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.SubjectID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
