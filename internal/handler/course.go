package handler

import (
	"github.com/deppfellow/courses/internal/model"
	"github.com/deppfellow/courses/internal/server"
	"github.com/deppfellow/courses/internal/service"
	"github.com/labstack/echo/v4"
)

// CourseHandler serves /api/courses.
type CourseHandler struct {
	Handler
	courses *service.CourseService
}

func NewCourseHandler(s *server.Server, courses *service.CourseService) *CourseHandler {
	return &CourseHandler{
		Handler: NewHandler(s),
		courses: courses,
	}
}

// ListCourses handles GET /api/courses.
func (h *CourseHandler) ListCourses(c echo.Context, req *model.ListCoursesRequest) ([]model.Course, error) {
	return h.courses.List(), nil
}

// GetCourse handles GET /api/courses/:id.
func (h *CourseHandler) GetCourse(c echo.Context, req *model.GetCourseRequest) (model.Course, error) {
	return h.courses.Get(req.CourseID())
}

// CreateCourse handles POST /api/courses.
func (h *CourseHandler) CreateCourse(c echo.Context, req *model.CreateCourseRequest) (model.Course, error) {
	return h.courses.Create(req.Name)
}

// UpdateCourse handles PUT /api/courses/:id.
func (h *CourseHandler) UpdateCourse(c echo.Context, req *model.UpdateCourseRequest) (model.Course, error) {
	return h.courses.Update(req)
}

// DeleteCourse handles DELETE /api/courses/:id.
func (h *CourseHandler) DeleteCourse(c echo.Context, req *model.DeleteCourseRequest) (model.Course, error) {
	return h.courses.Delete(req.CourseID())
}
