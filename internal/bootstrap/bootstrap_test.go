package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradebook/internal/config"
	appMiddleware "github.com/yigit/gradebook/internal/middleware"
)

func TestSetupRouter(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = "production"
	router := SetupRouter(cfg, &Dependencies{Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(appMiddleware.RequestIDHeader))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `gradebook_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestDependenciesCloseWithoutDatabase(t *testing.T) {
	assert.NotPanics(t, func() { (&Dependencies{}).Close() })
}
