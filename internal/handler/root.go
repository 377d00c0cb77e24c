package handler

import (
	"github.com/deppfellow/courses/internal/server"
	"github.com/labstack/echo/v4"
)

// EmptyRequest is bound by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{Handler: NewHandler(s)}
}

// Greet handles GET /.
func (h *RootHandler) Greet(c echo.Context, req *EmptyRequest) (string, error) {
	return "Hello World", nil
}
