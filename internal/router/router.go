// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/courses/internal/handler"
	"github.com/deppfellow/courses/internal/middleware"
	"github.com/deppfellow/courses/internal/validation"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the full middleware stack.
//
// Order matters:
//  1. RequestID first so every later log line and trace can carry it.
//  2. New Relic, then EnhanceTracing, so a transaction exists to decorate.
//  3. ContextEnhancer builds the request logger (needs 1 and 2).
//  4. RequestLogger wraps everything below it, so its latency covers the handler.
//  5. Recover, Secure and CORS closest to the routes.
func NewRouter(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler
	r.JSONSerializer = validation.JSONSerializer{}

	r.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Secure(),
		m.Global.CORS(),
	)

	registerSystemRoutes(r, h)
	registerCourseRoutes(r, h)

	return r
}
