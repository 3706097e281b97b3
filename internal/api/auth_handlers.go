package api

import (
	"net/http"

	"github.com/newsdeskapp/newsdesk-server/internal/http/response"
	"github.com/newsdeskapp/newsdesk-server/internal/service"
)

type tokenData struct {
	Token string `json:"token"`
}

// handleRegister creates a new account and signs the user straight in.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	token, err := s.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, tokenData{Token: token}, "register is successful", s.logger)
}

// handleLogin verifies credentials and returns a fresh access token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	token, err := s.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, tokenData{Token: token}, "login is successful", s.logger)
}

// handleProfile returns the authenticated user's profile.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "token invalid", s.logger)
		return
	}

	profile, err := s.authService.Profile(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, profile, "profile user", s.logger)
}
