package response_test

import (
	"encoding/json/v2"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/newsdeskapp/newsdesk-server/internal/errors"
	"github.com/newsdeskapp/newsdesk-server/internal/http/response"
	"github.com/newsdeskapp/newsdesk-server/internal/store"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Success(rec, map[string]string{"id": "cat-1"}, "category found", nil)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(200), body["code"])
	assert.Equal(t, "category found", body["message"])
	assert.NotNil(t, body["data"])
	assert.NotContains(t, body, "meta")
}

func TestPaginated(t *testing.T) {
	rec := httptest.NewRecorder()
	meta := store.NewPageMeta(store.PageRequest{Page: 2, Size: 10}, 21)
	response.Paginated(rec, []string{"a"}, meta, "ok", nil)

	body := decode(t, rec)
	require.Contains(t, body, "meta")
	m, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), m["page"])
	assert.Equal(t, float64(10), m["size"])
	assert.Equal(t, float64(3), m["totalPage"])
	assert.Equal(t, float64(21), m["totalData"])
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Unauthorized(rec, "token invalid", nil)

	assert.Equal(t, 401, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(401), body["code"])
	assert.Equal(t, "token invalid", body["message"])
}

func TestHandleError_DomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	response.HandleError(rec, domainerrors.NotFound("category not found"), nil)

	assert.Equal(t, 404, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "category not found", body["message"])
}

func TestHandleError_StoreFailureIsGeneric(t *testing.T) {
	rec := httptest.NewRecorder()
	response.HandleError(rec, domainerrors.StoreUnavailable(errors.New("badger exploded")), nil)

	assert.Equal(t, 500, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "internal server error", body["message"])
	assert.NotContains(t, body["message"], "badger")
}

func TestHandleError_UnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	response.HandleError(rec, errors.New("surprise"), nil)

	assert.Equal(t, 500, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "internal server error", body["message"])
}
