package main

import (
	"net/http"

	"books-api/internal/shared/middleware"
	"books-api/internal/shared/response"
	"books-api/pkg/container"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// SetupRouter builds the gin engine. Metrics are registered on reg and
// served from /metrics.
func SetupRouter(c *container.Container, reg *prometheus.Registry) *gin.Engine {
	router := gin.New()

	metrics := middleware.NewHTTPMetrics(reg)

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		metrics.Middleware(),
	)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	setupBookRoutes(router, c)

	router.NoRoute(func(ctx *gin.Context) {
		response.ErrorResponse(ctx, http.StatusNotFound, "ROUTE_NOT_FOUND", "Route not found")
	})

	return router
}

func setupBookRoutes(router *gin.Engine, c *container.Container) {
	books := router.Group("/books")
	{
		books.POST("", c.BookHandler.CreateBook)
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:isbn", c.BookHandler.GetBook)
		books.PUT("/:isbn", c.BookHandler.UpdateBook)
		books.DELETE("/:isbn", c.BookHandler.DeleteBook)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := appCtx.DB.HealthCheck(c.Request.Context()); err != nil {
			log.Warn().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}

		health := gin.H{"status": "ok"}
		if stats, err := appCtx.DB.Stats(); err == nil {
			health["database"] = stats
		}

		c.JSON(http.StatusOK, health)
	}
}
