//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"classroom-reservations/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.RequestLogging(slog.New(slog.NewJSONHandler(buf, nil))))
	engine.GET("/rooms/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	engine.GET("/broken", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })
	return engine
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return line
}

func TestRequestLogging(t *testing.T) {
	t.Run("generated id is exposed to handlers, the response and the log", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newLoggedEngine(&buf)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/7", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.JSONEq(t, `{"request_id":"`+id+`"}`, w.Body.String())

		line := decodeLine(t, &buf)
		assert.Equal(t, "INFO", line["level"])
		assert.Equal(t, id, line["request_id"])
		assert.Equal(t, "/rooms/:id", line["path"])
		assert.EqualValues(t, http.StatusOK, line["status"])
	})

	t.Run("caller supplied id is kept", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newLoggedEngine(&buf)

		req := httptest.NewRequest(http.MethodGet, "/rooms/7", nil)
		req.Header.Set(middleware.RequestIDHeader, "upstream-42")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "upstream-42", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "upstream-42", decodeLine(t, &buf)["request_id"])
	})

	t.Run("level follows the status class", func(t *testing.T) {
		cases := map[string]string{
			"/broken":  "ERROR",
			"/missing": "WARN",
		}
		for path, level := range cases {
			var buf bytes.Buffer
			engine := newLoggedEngine(&buf)

			engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))

			line := decodeLine(t, &buf)
			assert.Equal(t, level, line["level"], path)
			assert.Equal(t, path, line["path"], path)
		}
	})
}
