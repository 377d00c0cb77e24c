package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/courses/internal/middleware"
	"github.com/deppfellow/courses/internal/server"
	"github.com/deppfellow/courses/internal/service"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes an endpoint uptime monitors and load balancers can
// poll to see that the process is serving and the registry answers.
type HealthHandler struct {
	Handler
	courses *service.CourseService
}

func NewHealthHandler(s *server.Server, courses *service.CourseService) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		courses: courses,
	}
}

// CheckHealth handles GET /status.
//
// The registry lives in memory, so the only dependency check is that it
// can be read; the answer is always 200 while the process is up.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	registryStart := time.Now()
	count := h.courses.Count()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      h.server.Uptime().Round(time.Second).String(),
		"checks": map[string]interface{}{
			"registry": map[string]interface{}{
				"status":        "healthy",
				"course_count":  count,
				"response_time": time.Since(registryStart).String(),
			},
		},
	}

	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomMetric("Custom/Registry/CourseCount", float64(count))
	}

	logger.Debug().
		Int("course_count", count).
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
