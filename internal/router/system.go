package router

import (
	"net/http"

	"github.com/deppfellow/courses/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// course API itself.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.HandleString(h.Root.Handler, h.Root.Greet, http.StatusOK, &handler.EmptyRequest{}))

	// Health status endpoint for monitors.
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/docs", h.OpenAPI.ServeOpenAPISpec)
}
