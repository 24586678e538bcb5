package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/deppfellow/persons-api/internal/lib/response"
	"github.com/deppfellow/persons-api/internal/middleware"
	"github.com/deppfellow/persons-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthReport is the data field of a /status response.
type HealthReport struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// CheckHealth pings every configured dependency. It answers 200 when all of
// them respond and 503 otherwise. Redis is only checked when it is configured.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability.HealthChecks

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	report := HealthReport{
		Status:      "healthy",
		Timestamp:   start.UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]HealthCheck),
	}

	if cfg.Enabled {
		if slices.Contains(cfg.Checks, "database") {
			report.Checks["database"] = h.check(c.Request().Context(), "database", cfg.Timeout, h.server.DB.Pool.Ping)
		}

		if slices.Contains(cfg.Checks, "redis") && h.server.Redis != nil {
			report.Checks["redis"] = h.check(c.Request().Context(), "redis", cfg.Timeout, func(ctx context.Context) error {
				return h.server.Redis.Ping(ctx).Err()
			})
		}
	}

	status := http.StatusOK
	for _, check := range report.Checks {
		if check.Status != "healthy" {
			report.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		}
	}

	if status != http.StatusOK {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		h.recordHealthCheckError("overall", time.Since(start), nil)
	} else {
		logger.Debug().
			Dur("total_duration", time.Since(start)).
			Msg("health check passed")
	}

	return c.JSON(status, response.New(status, report))
}

func (h *HealthHandler) check(parent context.Context, name string, timeout time.Duration, ping func(context.Context) error) HealthCheck {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		h.server.Logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")
		h.recordHealthCheckError(name, elapsed, err)

		return HealthCheck{
			Status:       "unhealthy",
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}
	}

	return HealthCheck{
		Status:       "healthy",
		ResponseTime: elapsed.String(),
	}
}

func (h *HealthHandler) recordHealthCheckError(checkType string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	event := map[string]any{
		"check_type":       checkType,
		"operation":        "health_check",
		"error_type":       checkType + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		event["error_message"] = err.Error()
	}

	app.RecordCustomEvent("HealthCheckError", event)
}
