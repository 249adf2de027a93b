package middleware

import (
	"time"

	"video-summarizer/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with status and latency
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		logger.GetLogger().WithFields(map[string]interface{}{
			"request_id": ctx.GetString(RequestIDKey),
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"status":     ctx.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  ctx.ClientIP(),
		}).Info("Request completed")
	}
}
