package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/IvanovPete/test-backend/internal/service"
	"github.com/IvanovPete/test-backend/models"
)

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// decodeJSON decodes the request body into dst. Unknown fields, including
// the optional "token", are ignored.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodePayload is decodeJSON for routes that need an identity: an
// anonymous caller gets [service.ErrUnauthorized] even when the body is
// malformed.
func decodePayload(r *http.Request, identity *models.User, dst any) error {
	err := decodeJSON(r, dst)
	if err != nil && identity == nil {
		return service.ErrUnauthorized
	}
	return err
}
