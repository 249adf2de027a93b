package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"video-summarizer/interfaces/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouterWithRequestID(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ping", handler)
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	router := newRouterWithRequestID(func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(middleware.RequestIDKey))
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := recorder.Header().Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, id)
	// The handler must see the same id the caller gets back
	assert.Equal(t, id, recorder.Body.String())
}

func TestRequestIDHonorsInbound(t *testing.T) {
	router := newRouterWithRequestID(func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "caller-supplied-id")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "caller-supplied-id", recorder.Header().Get(middleware.RequestIDHeader))
}
