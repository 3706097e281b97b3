package api

import (
	"net/http"

	"github.com/newsdeskapp/newsdesk-server/internal/http/response"
)

type healthData struct {
	Status string `json:"status"`
}

// handleHealthCheck reports liveness.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	response.Success(w, healthData{Status: "ok"}, "service is healthy", s.logger)
}
