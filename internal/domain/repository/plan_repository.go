package repository

import (
	"context"

	"fitflow/internal/domain/entity"
	"fitflow/internal/errors"

	"github.com/google/uuid"
)

// ErrPlanNotFound is returned when a user has no current plan of the requested kind.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRepository defines the interface for plan persistence. Each user has at
// most one current plan per kind; the kind selects the backing table.
type PlanRepository interface {
	// FindCurrent retrieves the current plan of the given kind for the user.
	FindCurrent(ctx context.Context, userID uuid.UUID, kind entity.PlanKind) (*entity.Plan, error)

	// Upsert atomically replaces the current plan for (user, kind). A blind
	// insert is incorrect here: the write must target the existing row when one
	// is present so duplicate "current" rows can never appear.
	Upsert(ctx context.Context, plan *entity.Plan) error
}
