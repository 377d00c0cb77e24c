package service

import (
	"errors"

	"github.com/deppfellow/courses/internal/errs"
	"github.com/deppfellow/courses/internal/model"
	"github.com/deppfellow/courses/internal/repository"
	"github.com/deppfellow/courses/internal/validation"
	"github.com/rs/zerolog"
)

// CourseNotFoundMessage is the fixed message for any id without a course.
const CourseNotFoundMessage = "The course with the given ID was not found"

// CourseService is the course registry: list, get, create, update and
// delete with name validation on every write.
//
// Errors it returns are *errs.HTTPError values: 404 for unknown ids and
// 400 for names that break the CourseInput rules.
type CourseService struct {
	repo   *repository.CourseRepository
	logger *zerolog.Logger
}

func NewCourseService(logger *zerolog.Logger, repo *repository.CourseRepository) *CourseService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &CourseService{repo: repo, logger: logger}
}

// List returns every course in insertion order.
func (s *CourseService) List() []model.Course {
	return s.repo.List()
}

// Count returns the number of courses.
func (s *CourseService) Count() int {
	return s.repo.Count()
}

// Get returns the course with the given id.
func (s *CourseService) Get(id int) (model.Course, error) {
	course, err := s.repo.FindByID(id)
	if err != nil {
		return model.Course{}, mapRepositoryError(err)
	}
	return course, nil
}

// Create validates name and stores a new course under the next id.
func (s *CourseService) Create(name string) (model.Course, error) {
	if err := validateName(name); err != nil {
		return model.Course{}, err
	}

	course := s.repo.Insert(name)

	s.logger.Info().
		Int("course_id", course.ID).
		Msg("course created")

	return course, nil
}

// Update renames an existing course. An unknown id is reported before the
// body is looked at, then a body that failed to decode, then the name rules.
func (s *CourseService) Update(req *model.UpdateCourseRequest) (model.Course, error) {
	id := req.CourseID()

	if _, err := s.repo.FindByID(id); err != nil {
		return model.Course{}, mapRepositoryError(err)
	}

	if err := req.BodyErr(); err != nil {
		return model.Course{}, err
	}

	if err := validateName(req.Name); err != nil {
		return model.Course{}, err
	}

	course, err := s.repo.UpdateName(id, req.Name)
	if err != nil {
		return model.Course{}, mapRepositoryError(err)
	}

	s.logger.Info().
		Int("course_id", course.ID).
		Msg("course updated")

	return course, nil
}

// Delete removes a course and returns it.
func (s *CourseService) Delete(id int) (model.Course, error) {
	course, err := s.repo.Delete(id)
	if err != nil {
		return model.Course{}, mapRepositoryError(err)
	}

	s.logger.Info().
		Int("course_id", course.ID).
		Msg("course deleted")

	return course, nil
}

func validateName(name string) error {
	return validation.Struct(&model.CourseInput{Name: name})
}

func mapRepositoryError(err error) error {
	if errors.Is(err, repository.ErrCourseNotFound) {
		return errs.NewNotFoundError(CourseNotFoundMessage, true, nil)
	}
	return err
}
