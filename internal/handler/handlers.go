// Package handler is the first layer after the router.
//
// It binds requests through the validation package, calls the service
// layer, and hands results back to Echo. It is the boundary between HTTP
// and the course registry.
package handler

import (
	"github.com/deppfellow/courses/internal/server"
	"github.com/deppfellow/courses/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	Root    *RootHandler
	Course  *CourseHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:    NewRootHandler(s),
		Course:  NewCourseHandler(s, services.Courses),
		Health:  NewHealthHandler(s, services.Courses),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
