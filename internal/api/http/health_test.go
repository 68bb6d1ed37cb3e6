package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func serveHealth(t *testing.T, h *HealthHandler, path string) (int, HealthResponse) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHealthCheck(t *testing.T) {
	t.Run("no dependencies", func(t *testing.T) {
		code, resp := serveHealth(t, NewHealthHandler("taskboard", "1.0.0", nil, nil), "/health")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "taskboard", resp.Service)
		assert.Equal(t, "disabled", resp.DB)
		assert.Equal(t, "disabled", resp.Redis)
	})

	t.Run("all up", func(t *testing.T) {
		code, resp := serveHealth(t, NewHealthHandler("taskboard", "1.0.0", fakePinger{}, fakePinger{}), "/healthz")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "up", resp.DB)
		assert.Equal(t, "up", resp.Redis)
	})

	t.Run("redis down", func(t *testing.T) {
		code, resp := serveHealth(t, NewHealthHandler("taskboard", "1.0.0", fakePinger{}, fakePinger{err: errors.New("refused")}), "/health")
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "down", resp.Redis)
	})
}
