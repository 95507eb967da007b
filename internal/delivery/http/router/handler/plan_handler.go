package handler

import (
	"log/slog"
	"net/http"

	"fitflow/internal/delivery/http/response"
	"fitflow/internal/domain/entity"
	"fitflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlanHandler holds dependencies for plan-related handlers.
type PlanHandler struct {
	uc     usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlanUsecase, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{
		uc:     uc,
		logger: logger,
	}
}

// GeneratePlan handles the plan generation request for a plan kind.
func (h *PlanHandler) GeneratePlan(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	kind := entity.PlanKind(c.Param("kind"))
	if !kind.Valid() {
		return response.BadRequest(c, "INVALID_PLAN_KIND", "Plan kind must be 'meal' or 'workout'")
	}

	plan, err := h.uc.GeneratePlan(c.Request().Context(), userID, kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Plan generated successfully")
}

// GetCurrentPlan returns the user's current plan of the requested kind.
func (h *PlanHandler) GetCurrentPlan(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	kind := entity.PlanKind(c.Param("kind"))
	if !kind.Valid() {
		return response.BadRequest(c, "INVALID_PLAN_KIND", "Plan kind must be 'meal' or 'workout'")
	}

	plan, err := h.uc.GetCurrentPlan(c.Request().Context(), userID, kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "")
}
