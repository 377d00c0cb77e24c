// Package repository owns the data the service layer works on.
//
// There is no database behind this service: the course collection lives
// in process memory, guarded by a mutex, and is lost on restart.
package repository

import (
	"github.com/deppfellow/courses/internal/model"
	"github.com/deppfellow/courses/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Courses *CourseRepository
}

// NewRepositories constructs the repository container.
//
// The course collection is seeded with course1..course3 unless
// registry.seed is disabled in the configuration.
func NewRepositories(s *server.Server) *Repositories {
	var seed []model.Course
	if s.Config.Registry.Seed {
		seed = DefaultSeed()
	}

	return &Repositories{
		Courses: NewCourseRepository(s.Logger, seed),
	}
}
