// Package response provides standardized HTTP response formatting and error handling utilities.
package response

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"

	domainerrors "github.com/newsdeskapp/newsdesk-server/internal/errors"
	"github.com/newsdeskapp/newsdesk-server/internal/store"
)

// Envelope is the JSON response structure every endpoint returns.
// Code mirrors the HTTP status so clients that only look at the body
// still get a machine-checkable outcome.
type Envelope struct {
	Success bool            `json:"success"`
	Data    any             `json:"data"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
	Meta    *store.PageMeta `json:"meta,omitempty"`
}

// JSON writes an envelope with the given status code using json/v2.
func JSON(w http.ResponseWriter, status int, env Envelope, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	env.Success = status < 400
	env.Code = status

	// json/v2 MarshalWrite doesn't add a newline, but that's fine for HTTP responses.
	if err := json.MarshalWrite(w, env); err != nil {
		if logger != nil {
			logger.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// Success writes a successful response (200 OK).
func Success(w http.ResponseWriter, data any, message string, logger *slog.Logger) {
	JSON(w, http.StatusOK, Envelope{Data: data, Message: message}, logger)
}

// Created writes a created response (201 Created).
func Created(w http.ResponseWriter, data any, message string, logger *slog.Logger) {
	JSON(w, http.StatusCreated, Envelope{Data: data, Message: message}, logger)
}

// Paginated writes a successful list response with the pagination meta block.
func Paginated(w http.ResponseWriter, data any, meta store.PageMeta, message string, logger *slog.Logger) {
	JSON(w, http.StatusOK, Envelope{Data: data, Message: message, Meta: &meta}, logger)
}

// Error writes an error response with the given status code.
func Error(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	JSON(w, status, Envelope{Message: message}, logger)
}

// BadRequest writes a 400 Bad Request response.
func BadRequest(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusBadRequest, message, logger)
}

// Unauthorized writes a 401 Unauthorized response.
func Unauthorized(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusUnauthorized, message, logger)
}

// NotFound writes a 404 Not Found response.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusNotFound, message, logger)
}

// TooManyRequests writes a 429 Too Many Requests response.
func TooManyRequests(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusTooManyRequests, message, logger)
}

// InternalError writes a 500 Internal Server Error response.
func InternalError(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusInternalServerError, message, logger)
}

// HandleError writes an appropriate HTTP response based on the error type.
// Domain errors carry their own status and user-facing message; anything
// else is logged here and surfaced as a generic 500 so internals don't
// leak to the caller.
func HandleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var derr *domainerrors.Error
	if domainerrors.As(err, &derr) {
		if derr.Code == domainerrors.CodeInternal || derr.Code == domainerrors.CodeStoreUnavailable {
			if logger != nil {
				logger.Error("Store failure", "error", err)
			}
			InternalError(w, "internal server error", logger)
			return
		}
		Error(w, derr.HTTPStatus(), derr.Message, logger)
		return
	}

	// Unknown error = 500
	if logger != nil {
		logger.Error("Unhandled error", "error", err)
	}
	InternalError(w, "internal server error", logger)
}
