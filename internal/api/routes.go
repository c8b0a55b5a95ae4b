// routes.go - Route registration helpers
package api

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/katalvlaran/kaleido/internal/config"
)

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HandleHealth)

	g := e.Group("/api")
	g.POST("/generate", h.HandleGenerate)
	g.GET("/scene/default", h.HandleDefaultScene)
	g.GET("/lattice", h.HandleLattice)
	g.POST("/sample", h.HandleSample)
}

// SetupMiddleware installs the error handler, request logging, panic
// recovery and the body limit. cfg.BodyLimit must already be validated.
func SetupMiddleware(e *echo.Echo, cfg config.ServerConfig, log *slog.Logger) {
	e.HTTPErrorHandler = NewErrorHandler(log)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return !cfg.RequestLogging || c.Request().URL.Path == "/health"
		},
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelWarn
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if id := c.Response().Header().Get(HeaderGenerationID); id != "" {
				attrs = append(attrs, slog.String("generation_id", id))
			}
			log.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10,
	}))

	e.Use(middleware.BodyLimit(cfg.BodyLimit))
}
