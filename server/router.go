package server

import (
	"fmt"
	"net/http"
	"time"

	"video-summarizer/domain/dto"
	httpHandler "video-summarizer/interfaces/http"
	"video-summarizer/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	summaryHandler httpHandler.ISummaryHandler,
	healthHandler httpHandler.IHealthHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Detail: fmt.Sprintf("An internal error occurred: %v", recovered),
		})
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		MaxAge:          12 * time.Hour,
	}))

	router.POST("/summarize", summaryHandler.Summarize)
	router.GET("/healthz", healthHandler.Healthz)

	return router
}
