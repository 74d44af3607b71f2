package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/max-scw/dmc-service/catalog"
	"github.com/max-scw/dmc-service/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader("meta;di;explanation\n;S;Serial Number\n"))
	require.NoError(t, err)
	return NewServer(service.New(cat), nil)
}

func TestHandleInfo(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dmc-service")
}

func TestHandleCountAscii(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/count-ascii-characters/from-text?text=S123456", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4\n", w.Body.String())
}

func TestHandleImageFromText(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/image/from-text?text=S123456", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\x89PNG"))
}

func TestHandleMetrics(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "dmc_build_requests_total")
}

func TestHandleMessageFromJSONBuildsWireFormat(t *testing.T) {
	s := testServer(t)
	data := `{"messages":[{"format":"ANSI-MH-10","fields":{"S":"123456"}}],"use_message_envelope":true,"use_format_envelope":true}`
	req := httptest.NewRequest(http.MethodGet, "/message/from-json?data="+strings.ReplaceAll(data, " ", "%20"), nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "S123456")
}
