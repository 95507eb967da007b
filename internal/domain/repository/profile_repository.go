// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fitflow/internal/domain/entity"
	"fitflow/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// FindByUserID retrieves the profile for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Upsert creates or replaces the profile row for the profile's user.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
