package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key carrying the per-request id
const RequestIDKey = "request_id"

// RequestIDHeader is echoed back so callers can correlate responses with logs
const RequestIDHeader = "X-Request-ID"

// RequestID attaches an id to every request, honoring one supplied by the caller
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.Request.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(RequestIDKey, id)
		ctx.Writer.Header().Set(RequestIDHeader, id)
		ctx.Next()
	}
}
