// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives bound
// request data from the handler, enforces the business rules, and calls
// repository methods to read and change state.
package service

import (
	"github.com/deppfellow/courses/internal/repository"
	"github.com/deppfellow/courses/internal/server"
)

type Services struct {
	Courses *CourseService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Courses: NewCourseService(s.Logger, repos.Courses),
	}
}
