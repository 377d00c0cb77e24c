package router

import (
	"net/http"

	"github.com/deppfellow/courses/internal/handler"
	"github.com/deppfellow/courses/internal/model"
	"github.com/labstack/echo/v4"
)

func registerCourseRoutes(r *echo.Echo, h *handler.Handlers) {
	ch := h.Course
	courses := r.Group("/api/courses")

	courses.GET("", handler.Handle(ch.Handler, ch.ListCourses, http.StatusOK, &model.ListCoursesRequest{}))
	courses.POST("", handler.Handle(ch.Handler, ch.CreateCourse, http.StatusOK, &model.CreateCourseRequest{}))
	courses.GET("/:id", handler.Handle(ch.Handler, ch.GetCourse, http.StatusOK, &model.GetCourseRequest{}))
	courses.PUT("/:id", handler.Handle(ch.Handler, ch.UpdateCourse, http.StatusOK, &model.UpdateCourseRequest{}))
	courses.DELETE("/:id", handler.Handle(ch.Handler, ch.DeleteCourse, http.StatusOK, &model.DeleteCourseRequest{}))
}
