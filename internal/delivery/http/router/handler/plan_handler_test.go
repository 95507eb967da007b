package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitflow/internal/delivery/http/middleware"
	"fitflow/internal/domain/entity"
	mockUsecase "fitflow/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPlanTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	c.Set(middleware.KeyUserID, userID)

	return c, rec, userID
}

func TestPlanHandler_GeneratePlan(t *testing.T) {
	uc := mockUsecase.NewMockPlanUsecase(t)
	handler := NewPlanHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec, userID := newPlanTestContext(t, http.MethodPost, "/api/v1/plans/meal/generate")
	c.SetParamNames("kind")
	c.SetParamValues("meal")

	uc.EXPECT().
		GeneratePlan(mock.Anything, userID, entity.PlanKindMeal).
		Return(&entity.Plan{UserID: userID, Kind: entity.PlanKindMeal}, nil)

	err := handler.GeneratePlan(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestPlanHandler_GeneratePlan_InvalidKind(t *testing.T) {
	uc := mockUsecase.NewMockPlanUsecase(t)
	handler := NewPlanHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec, _ := newPlanTestContext(t, http.MethodPost, "/api/v1/plans/yoga/generate")
	c.SetParamNames("kind")
	c.SetParamValues("yoga")

	err := handler.GeneratePlan(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PLAN_KIND")
}

func TestPlanHandler_GeneratePlan_MissingIdentity(t *testing.T) {
	uc := mockUsecase.NewMockPlanUsecase(t)
	handler := NewPlanHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/meal/generate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("kind")
	c.SetParamValues("meal")

	err := handler.GeneratePlan(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPlanHandler_GetCurrentPlan(t *testing.T) {
	uc := mockUsecase.NewMockPlanUsecase(t)
	handler := NewPlanHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec, userID := newPlanTestContext(t, http.MethodGet, "/api/v1/plans/workout")
	c.SetParamNames("kind")
	c.SetParamValues("workout")

	uc.EXPECT().
		GetCurrentPlan(mock.Anything, userID, entity.PlanKindWorkout).
		Return(&entity.Plan{UserID: userID, Kind: entity.PlanKindWorkout}, nil)

	err := handler.GetCurrentPlan(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"workout"`)
}
