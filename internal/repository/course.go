package repository

import (
	"errors"
	"sync"

	"github.com/deppfellow/courses/internal/model"
	"github.com/rs/zerolog"
)

// ErrCourseNotFound is returned when no course has the requested id.
var ErrCourseNotFound = errors.New("course not found")

// DefaultSeed is the collection a fresh process starts with.
func DefaultSeed() []model.Course {
	return []model.Course{
		{ID: 1, Name: "course1"},
		{ID: 2, Name: "course2"},
		{ID: 3, Name: "course3"},
	}
}

// CourseRepository is an insertion-ordered, in-memory course collection.
//
// All methods are safe for concurrent use. Records never leave the
// repository by reference: every method returns copies.
type CourseRepository struct {
	mu      sync.RWMutex
	courses []model.Course

	// nextID only ever grows, so an id is never handed out twice even
	// after deletes.
	nextID int

	logger *zerolog.Logger
}

// NewCourseRepository creates a repository holding a copy of seed.
func NewCourseRepository(logger *zerolog.Logger, seed []model.Course) *CourseRepository {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	courses := make([]model.Course, len(seed))
	copy(courses, seed)

	nextID := 1
	for _, c := range courses {
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}

	return &CourseRepository{
		courses: courses,
		nextID:  nextID,
		logger:  logger,
	}
}

// List returns every course in insertion order.
func (r *CourseRepository) List() []model.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Course, len(r.courses))
	copy(out, r.courses)
	return out
}

// Count returns the number of stored courses.
func (r *CourseRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.courses)
}

// FindByID returns the course with the given id.
func (r *CourseRepository) FindByID(id int) (model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Course{}, ErrCourseNotFound
	}
	return r.courses[i], nil
}

// Insert appends a new course under the next free id.
func (r *CourseRepository) Insert(name string) model.Course {
	r.mu.Lock()
	defer r.mu.Unlock()

	course := model.Course{ID: r.nextID, Name: name}
	r.nextID++
	r.courses = append(r.courses, course)

	r.logger.Debug().
		Int("course_id", course.ID).
		Int("count", len(r.courses)).
		Msg("course inserted")

	return course
}

// UpdateName replaces the name of the course with the given id in place.
func (r *CourseRepository) UpdateName(id int, name string) (model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Course{}, ErrCourseNotFound
	}
	r.courses[i].Name = name

	r.logger.Debug().
		Int("course_id", id).
		Msg("course renamed")

	return r.courses[i], nil
}

// Delete removes the course with the given id, keeping the order of the
// remaining courses, and returns the removed record.
func (r *CourseRepository) Delete(id int) (model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Course{}, ErrCourseNotFound
	}

	removed := r.courses[i]
	r.courses = append(r.courses[:i], r.courses[i+1:]...)

	r.logger.Debug().
		Int("course_id", id).
		Int("count", len(r.courses)).
		Msg("course deleted")

	return removed, nil
}

// indexOf does a linear scan; callers must hold r.mu.
func (r *CourseRepository) indexOf(id int) int {
	for i := range r.courses {
		if r.courses[i].ID == id {
			return i
		}
	}
	return -1
}
