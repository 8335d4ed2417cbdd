// Package api serves the saved brick breaker scores over a read-only HTTP API.
package api

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/brickbreaker/internal/api/handlers"
)

// NewRouter creates a gin engine with recovery, request logging and all routes.
func NewRouter(store handlers.ScoreReader, logger *log.Logger) *gin.Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))
	SetupRoutes(router, store)
	return router
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, store handlers.ScoreReader) {
	// Read-only API, any origin may fetch it
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		scores := v1.Group("/scores")
		{
			scores.GET("", handlers.GetTopScores(store))
			scores.GET("/best", handlers.GetBestScore(store))
		}

		v1.GET("/stats", handlers.GetStats(store))
	}
}

// RequestLogger logs one line per request, plus any handler errors.
func RequestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if len(c.Errors) > 0 {
			logger.Error("request failed", append(fields, "error", c.Errors.String())...)
			return
		}
		logger.Info("request", fields...)
	}
}
