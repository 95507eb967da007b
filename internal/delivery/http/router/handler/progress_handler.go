package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fitflow/internal/delivery/http/response"
	"fitflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProgressHandler holds dependencies for daily-tracking handlers.
type ProgressHandler struct {
	uc     usecase.ProgressUsecase
	logger *slog.Logger
}

// NewProgressHandler is the constructor for ProgressHandler, injected by Fx.
func NewProgressHandler(uc usecase.ProgressUsecase, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{
		uc:     uc,
		logger: logger,
	}
}

// LogWeightInput is the body for the weight endpoint. Date defaults to today.
type LogWeightInput struct {
	WeightKg float64 `json:"weight" validate:"required,gt=0"`
	Date     string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// LogWaterInput is the body for the water endpoint. Date defaults to today.
type LogWaterInput struct {
	Glasses int    `json:"glasses" validate:"required,gt=0"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// LogWorkoutInput is the body for the workout endpoint. Date defaults to today.
type LogWorkoutInput struct {
	WorkoutID string `json:"workout_id" validate:"required"`
	Completed bool   `json:"completed"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// LogWeight records the weight for a day.
func (h *ProgressHandler) LogWeight(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input LogWeightInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weight input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.LogWeight(c.Request().Context(), userID, dateOrToday(input.Date), input.WeightKg); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Weight logged successfully")
}

// LogWater adds glasses of water to a day's total.
func (h *ProgressHandler) LogWater(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input LogWaterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid water input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.LogWater(c.Request().Context(), userID, dateOrToday(input.Date), input.Glasses); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Water logged successfully")
}

// LogWorkout toggles a workout in a day's completed set.
func (h *ProgressHandler) LogWorkout(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input LogWorkoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.LogWorkout(c.Request().Context(), userID, dateOrToday(input.Date), input.WorkoutID, input.Completed); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Workout logged successfully")
}

// GetToday returns today's progress entry, zero-valued when nothing was logged.
func (h *ProgressHandler) GetToday(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entry, err := h.uc.GetTodaysProgress(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "")
}

// GetStreak returns the current consecutive-workout-day count.
func (h *ProgressHandler) GetStreak(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	streak, err := h.uc.ComputeStreak(c.Request().Context(), userID, time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"streak": streak}, "")
}

// dateOrToday parses an optional 2006-01-02 date, falling back to now.
// Validation already rejected malformed values.
func dateOrToday(s string) time.Time {
	if s == "" {
		return time.Now()
	}

	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Now()
	}

	return parsed
}
