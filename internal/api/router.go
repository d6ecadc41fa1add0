package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/entarch/systems-catalog/internal/api/handler"
	"github.com/entarch/systems-catalog/internal/core/service"
	"github.com/entarch/systems-catalog/internal/infrastructure/db/file"
	"github.com/entarch/systems-catalog/internal/infrastructure/http/handlers"
)

const apiVersion = "1.0.0"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *file.Store, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// The catalog frontend is served from a separate origin during development.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	catalogService := service.NewCatalogService(store, log)
	chatService := service.NewChatService(store, log)
	systemHandler := handler.NewSystemHandler(catalogService)
	chatHandler := handler.NewChatHandler(chatService)

	// --- Catalog routes ---
	e.GET("/api/systems", systemHandler.List)
	e.POST("/api/systems", systemHandler.Create)
	e.GET("/api/systems/:system_id", systemHandler.Get)
	e.PUT("/api/systems/:system_id", systemHandler.Update)
	e.DELETE("/api/systems/:system_id", systemHandler.Delete)

	// --- Mock chat ---
	e.POST("/api/chat", chatHandler.Respond)

	// --- Root, health probes, metrics ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Enterprise Systems Catalog API",
			"version": apiVersion,
		})
	})

	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(store)
	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the document readable?

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
