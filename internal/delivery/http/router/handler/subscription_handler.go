package handler

import (
	"log/slog"
	"net/http"

	"fitflow/internal/delivery/http/response"
	"fitflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for subscription-related handlers.
type SubscriptionHandler struct {
	uc     usecase.EntitlementUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.EntitlementUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetState returns the subscription state the client renders paywalls from.
func (h *SubscriptionHandler) GetState(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	state, err := h.uc.GetState(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// Upgrade moves the user to the pro tier.
func (h *SubscriptionHandler) Upgrade(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	sub, err := h.uc.Upgrade(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sub, "Subscription upgraded successfully")
}

// PurchaseRegenerations adds a batch of regenerations to the user's quota.
func (h *SubscriptionHandler) PurchaseRegenerations(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	sub, err := h.uc.PurchaseRegenerations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sub, "Regenerations purchased successfully")
}
