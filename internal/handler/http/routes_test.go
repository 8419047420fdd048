package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/IvanovPete/test-backend/internal/service"
	"github.com/IvanovPete/test-backend/models"
)

// anonymousServices answers every call the way an anonymous caller would be
// answered.
func anonymousServices(t *testing.T) *testServices {
	s := newTestServices(t)
	s.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return("", service.ErrInvalidDataProvided).AnyTimes()
	s.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", service.ErrInvalidDataProvided).AnyTimes()
	s.auth.EXPECT().RegenerateToken(gomock.Any(), gomock.Nil()).Return("", service.ErrUnauthorized).AnyTimes()
	s.auth.EXPECT().DeleteAccount(gomock.Any(), gomock.Nil()).Return(service.ErrUnauthorized).AnyTimes()
	s.articles.EXPECT().List(gomock.Any()).Return([]models.Article{}, nil).AnyTimes()
	s.articles.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.Article{}, nil).AnyTimes()
	s.articles.EXPECT().Delete(gomock.Any(), gomock.Nil(), gomock.Any()).Return(service.ErrUnauthorized).AnyTimes()
	s.comments.EXPECT().List(gomock.Any()).Return([]models.Comment{}, nil).AnyTimes()
	s.comments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.Comment{}, nil).AnyTimes()
	s.comments.EXPECT().Delete(gomock.Any(), gomock.Nil(), gomock.Any()).Return(service.ErrUnauthorized).AnyTimes()
	s.categories.EXPECT().List(gomock.Any()).Return([]models.Category{}, nil).AnyTimes()
	s.categories.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.Category{}, nil).AnyTimes()
	s.categories.EXPECT().Delete(gomock.Any(), gomock.Nil(), gomock.Any()).Return(service.ErrUnauthorized).AnyTimes()
	s.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()
	return s
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestRouter(t, anonymousServices(t))

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/token"},
		{http.MethodDelete, "/api/auth/me"},
		{http.MethodGet, "/api/articles"},
		{http.MethodPost, "/api/articles"},
		{http.MethodGet, "/api/articles/1"},
		{http.MethodPut, "/api/articles/1"},
		{http.MethodPatch, "/api/articles/1"},
		{http.MethodDelete, "/api/articles/1"},
		{http.MethodGet, "/api/comments"},
		{http.MethodPost, "/api/comments"},
		{http.MethodGet, "/api/comments/1"},
		{http.MethodPut, "/api/comments/1"},
		{http.MethodPatch, "/api/comments/1"},
		{http.MethodDelete, "/api/comments/1"},
		{http.MethodGet, "/api/categories"},
		{http.MethodPost, "/api/categories"},
		{http.MethodGet, "/api/categories/1"},
		{http.MethodDelete, "/api/categories/1"},
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/metrics"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := do(t, router, tc.method, tc.path, "", nil)

			assert.NotEqual(t, http.StatusNotFound, rec.Code, "route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, "method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_AnonymousMutationsAreUnauthorized(t *testing.T) {
	router := newTestRouter(t, anonymousServices(t))

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/token"},
		{http.MethodDelete, "/api/auth/me"},
		{http.MethodPost, "/api/articles"},
		{http.MethodPut, "/api/articles/999"},
		{http.MethodPatch, "/api/articles/999"},
		{http.MethodDelete, "/api/articles/999"},
		{http.MethodPost, "/api/comments"},
		{http.MethodPut, "/api/comments/999"},
		{http.MethodDelete, "/api/comments/999"},
		{http.MethodPost, "/api/categories"},
		{http.MethodDelete, "/api/categories/999"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			// no body at all: decoding fails, identity is checked first
			rec := do(t, router, tc.method, tc.path, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, service.ErrUnauthorized.Error(), detail(t, rec))
		})
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newTestRouter(t, anonymousServices(t))

	rec := do(t, router, http.MethodGet, "/api/version", "", nil)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_MetricsCountRequests(t *testing.T) {
	router := newTestRouter(t, anonymousServices(t))

	do(t, router, http.MethodGet, "/api/articles", "", nil)
	rec := do(t, router, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/articles",status="2xx"`)
}
