package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/utils"
	"github.com/IvanovPete/test-backend/models"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "

	// maxBodyBytes bounds how much of a request body is buffered while
	// looking for a token in it.
	maxBodyBytes = 1 << 20
)

// identify resolves the caller's token to a user and stores the result,
// possibly nil, in the request context under [utils.IdentityCtxKey].
//
// The token is taken from the "Authorization" header, with or without the
// "Bearer " scheme. Without a usable header the JSON body is searched for a
// string "token" field; the body is restored for the handler afterwards.
//
// identify never rejects a request. A missing or unknown token leaves the
// request anonymous and is logged as a warning.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		token := tokenFromHeader(r.Header)
		if token == "" {
			token = tokenFromBody(w, r)
		}

		var identity *models.User
		if token == "" {
			log.Warn().Str("func", "*Handler.identify").Msg("no token found in request")
		} else if user, ok := h.services.AuthService.ResolveToken(ctx, token); ok {
			identity = user
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// tokenFromHeader returns the part after "Bearer ", or the whole header
// value when the scheme is missing.
func tokenFromHeader(header http.Header) string {
	value := header.Get(authorizationHeader)
	if token, ok := strings.CutPrefix(value, bearerPrefix); ok {
		return token
	}
	return value
}

// tokenFromBody reads the "token" field of a JSON body. Unreadable or
// malformed bodies yield no token. The original body is closed and r.Body
// is replaced by a reader over the bytes consumed here.
func tokenFromBody(w http.ResponseWriter, r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	original := r.Body
	body, err := io.ReadAll(http.MaxBytesReader(w, original, maxBodyBytes))
	_ = original.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "tokenFromBody").Msg("request body could not be read")
		return ""
	}

	var payload models.TokenBody
	if err = json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return payload.Token
}
