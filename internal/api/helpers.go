package api

import (
	"encoding/json/v2"
	"io"
	"net/http"

	domainerrors "github.com/newsdeskapp/newsdesk-server/internal/errors"
)

// maxRequestBodySize bounds JSON request bodies at 1 MiB.
const maxRequestBodySize = 1 << 20

// decodeRequest reads and unmarshals a JSON request body into dst.
func decodeRequest(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		return domainerrors.Validation("unable to read request body")
	}
	if len(body) == 0 {
		return domainerrors.Validation("request body is required")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return domainerrors.Validation("invalid request body")
	}
	return nil
}
