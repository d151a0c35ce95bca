package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/KasumiMercury/primind-sleep-remind/internal/app"
)

type SleepHandler struct {
	useCase app.SleepReminderUseCase
}

func NewSleepHandler(useCase app.SleepReminderUseCase) *SleepHandler {
	registerValidators()

	return &SleepHandler{
		useCase: useCase,
	}
}

func (h *SleepHandler) Initialize(c *gin.Context) {
	ctx := c.Request.Context()

	slog.InfoContext(ctx, "handling initialize request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	if err := h.useCase.Initialize(ctx); err != nil {
		h.handleError(c, err)

		return
	}

	output, err := h.useCase.GetCurrentSchedule(ctx)
	if err != nil {
		h.handleError(c, err)

		return
	}

	resp := InitializeResponse{Status: "ready"}
	if output != nil {
		schedule := FromOutput(*output)
		resp.Schedule = &schedule
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SleepHandler) GetSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.useCase.GetCurrentSchedule(ctx)
	if err != nil {
		h.handleError(c, err)

		return
	}

	if output == nil {
		h.handleError(c, app.ErrNotFound)

		return
	}

	c.JSON(http.StatusOK, FromOutput(*output))
}

func (h *SleepHandler) UpdateSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	slog.InfoContext(ctx, "handling update schedule request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request validation failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Field:   bindingField(err),
		})

		return
	}

	output, err := h.useCase.UpdateSchedule(ctx, app.UpdateScheduleInput{
		Bedtime: req.Bedtime,
		Wakeup:  req.Wakeup,
	})
	if err != nil {
		if errors.Is(err, app.ErrSchedulingFailed) {
			slog.WarnContext(ctx, "schedule saved with missing reminders",
				"error", err,
				"bedtime_handle", output.BedtimeHandle,
				"wakeup_handle", output.WakeupHandle,
			)
			c.JSON(http.StatusBadGateway, SchedulingErrorResponse{
				ErrorResponse: ErrorResponse{
					Error:   "scheduling_failed",
					Message: "one or more reminders could not be scheduled",
				},
				Schedule: FromOutput(output),
			})

			return
		}

		h.handleError(c, err)

		return
	}

	slog.InfoContext(ctx, "sleep schedule updated",
		"bedtime", output.Bedtime,
		"wakeup", output.Wakeup,
	)
	c.JSON(http.StatusOK, FromOutput(output))
}

func (h *SleepHandler) DeleteSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	slog.InfoContext(ctx, "handling delete schedule request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	if err := h.useCase.CancelAll(ctx); err != nil {
		h.handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SleepHandler) handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	switch {
	case errors.Is(err, app.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "permission_denied",
			Message: "notification permission was not granted",
		})
	case errors.Is(err, app.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "no sleep schedule configured",
		})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "an internal error occurred",
		})
	}
}

func (h *SleepHandler) RegisterRoutes(router *gin.RouterGroup) {
	sleep := router.Group("/sleep")
	{
		sleep.POST("/initialize", h.Initialize)
		sleep.GET("/schedule", h.GetSchedule)
		sleep.PUT("/schedule", h.UpdateSchedule)
		sleep.DELETE("/schedule", h.DeleteSchedule)
	}
}

func bindingField(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return strings.ToLower(fieldErrs[0].Field())
	}

	return ""
}
