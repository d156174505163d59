//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"classroom-reservations/internal/handler/middleware"
	"classroom-reservations/internal/pkg/config"
	helper "classroom-reservations/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute())
	engine.GET("/panic", func(*gin.Context) { panic("boom") })
	engine.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return engine
}

func TestErrorEnvelope(t *testing.T) {
	engine := newEngine(config.NewTestConfig())

	t.Run("unknown route", func(t *testing.T) {
		w := helper.PerformRequest(t, engine, http.MethodGet, "/api/nope", nil, "")
		helper.AssertErrorResponse(t, w, http.StatusNotFound, "Route not found")
	})

	t.Run("panic is recovered", func(t *testing.T) {
		w := helper.PerformRequest(t, engine, http.MethodGet, "/panic", nil, "")
		helper.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCORS(t *testing.T) {
	t.Run("test config builds the middleware", func(t *testing.T) {
		cfg := config.NewTestConfig()
		assert.NotEmpty(t, cfg.CORS.AllowOrigins)
		assert.NotPanics(t, func() { middleware.NewCORSMiddleware(cfg.CORS) })

		engine := newEngine(cfg)
		req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Location is always exposed", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.CORS = config.CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{http.MethodGet},
			AllowHeaders:  []string{"Authorization"},
			ExposeHeaders: []string{"Content-Length"},
		}
		engine := newEngine(cfg)

		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		exposed := w.Header().Get("Access-Control-Expose-Headers")
		assert.True(t, strings.Contains(exposed, "Location"), "exposed headers: %q", exposed)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard origin", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.CORS = config.CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{http.MethodGet},
			AllowHeaders:     []string{"Authorization"},
			AllowCredentials: true,
		}
		engine := newEngine(cfg)

		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("Origin", "http://anywhere.example")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}
