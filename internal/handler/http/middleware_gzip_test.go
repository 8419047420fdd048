package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, b []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func echoHandler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"T"}`))
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(echoHandler)).ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"title":"T"}`, gunzip(t, rec.Body.Bytes()))
}

func TestWithGZip_PlainWhenNotAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(echoHandler)).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
}

func TestWithGZip_InflatesRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, `{"content":"C"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(echoHandler)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"content":"C"}`, rec.Body.String())
}

func TestWithGZip_InvalidGzipBody(t *testing.T) {
	called := false
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid gzip data")
}

func TestWithGZip_ReleasesRequestReader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, `{"token":"t"}`)))
	req.Header.Set("Content-Encoding", "gzip")

	var body *pooledReadCloser
	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		body, ok = r.Body.(*pooledReadCloser)
		require.True(t, ok)
		// the handler swaps the body without closing it
		r.Body = io.NopCloser(strings.NewReader(""))
	})).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, body)
	assert.Nil(t, body.release, "gzip reader must go back to the pool")
}
