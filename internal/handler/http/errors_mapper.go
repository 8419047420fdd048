package http

import (
	"errors"
	"net/http"

	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/service"
	"github.com/IvanovPete/test-backend/internal/store"
	"github.com/IvanovPete/test-backend/internal/utils"
	"github.com/IvanovPete/test-backend/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,
	ErrInvalidID:   http.StatusNotFound,

	service.ErrUnauthorized:        http.StatusUnauthorized,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUnknownCategory:     http.StatusBadRequest,
	service.ErrTokenIssuance:       http.StatusInternalServerError,

	validators.ErrEmptyUsername:       http.StatusBadRequest,
	validators.ErrUsernameTooLong:     http.StatusBadRequest,
	validators.ErrEmptyPassword:       http.StatusBadRequest,
	validators.ErrPasswordTooLong:     http.StatusBadRequest,
	validators.ErrEmptyTitle:          http.StatusBadRequest,
	validators.ErrTitleTooLong:        http.StatusBadRequest,
	validators.ErrEmptyContent:        http.StatusBadRequest,
	validators.ErrInvalidCategoryID:   http.StatusBadRequest,
	validators.ErrEmptyCategoryName:   http.StatusBadRequest,
	validators.ErrCategoryNameTooLong: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrCategoryAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrArticleNotFound:       http.StatusNotFound,
	store.ErrCommentNotFound:       http.StatusNotFound,
	store.ErrCategoryNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and the error envelope.
// Internal errors are logged with full detail and reported generically.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		utils.WriteDetail(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	utils.WriteDetail(w, err.Error(), status)
}
