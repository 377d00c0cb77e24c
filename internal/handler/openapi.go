package handler

import (
	_ "embed"
	"net/http"

	"github.com/deppfellow/courses/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openAPISpec []byte

// OpenAPIHandler serves the OpenAPI document describing this API.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPISpec handles GET /docs. Caching is disabled so edits to the
// document show up immediately.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, openAPISpec)
}
