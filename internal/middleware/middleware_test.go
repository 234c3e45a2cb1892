package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-salary/internal/middleware"
	"go-salary/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupRouter(logger *zap.Logger, origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(
		middleware.CORS(origins),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.AccessLog(logger),
	)
	r.GET("/ping", func(c *gin.Context) {
		ctx := c.Request.Context()
		contextutil.GetLogger(ctx, nil).Info("inside handler")
		c.String(http.StatusOK, contextutil.GetRequestID(ctx))
	})
	return r
}

func TestRequestID(t *testing.T) {
	t.Run("echoes incoming id", func(t *testing.T) {
		r := setupRouter(zap.NewNop(), nil)
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("generates id", func(t *testing.T) {
		r := setupRouter(zap.NewNop(), nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		rid := w.Header().Get("X-Request-ID")
		assert.NotEmpty(t, rid)
		assert.Equal(t, rid, w.Body.String())
	})
}

func TestContextLoggerAndAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := setupRouter(zap.New(core), nil)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "rid-1")

	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "inside handler", entries[0].Message)
	assert.Equal(t, "rid-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "http request", entries[1].Message)
	assert.Equal(t, int64(http.StatusOK), entries[1].ContextMap()["status"])
	assert.Equal(t, "/ping", entries[1].ContextMap()["route"])
}

func TestCORS(t *testing.T) {
	t.Run("any origin by default", func(t *testing.T) {
		r := setupRouter(zap.NewNop(), nil)
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://client.test")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("same origin gets no cors headers", func(t *testing.T) {
		r := setupRouter(zap.NewNop(), nil)
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://"+req.Host)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin allowed", func(t *testing.T) {
		r := setupRouter(zap.NewNop(), []string{"http://allowed.test"})
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://allowed.test")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://allowed.test", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("restricted origins", func(t *testing.T) {
		r := setupRouter(zap.NewNop(), []string{"http://allowed.test"})
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://other.test")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestSplitOrigins(t *testing.T) {
	assert.Nil(t, middleware.SplitOrigins(""))
	assert.Equal(t,
		[]string{"http://a.test", "http://b.test"},
		middleware.SplitOrigins(" http://a.test, ,http://b.test "),
	)
}
