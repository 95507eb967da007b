package service

import (
	"context"
)

// PlanGeneratedEvent is published after a plan has been generated and persisted.
type PlanGeneratedEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	UserID        string `json:"user_id"`
	PlanKind      string `json:"plan_kind"`
	Title         string `json:"title"`
	DailyCalories int    `json:"daily_calories,omitempty"`
	FreeTrial     bool   `json:"free_trial"` // True when this generation consumed the free trial.
}

// RegenerationsPurchasedEvent is published after a successful quota purchase.
type RegenerationsPurchasedEvent struct {
	RequestID          string  `json:"request_id,omitempty"`
	UserID             string  `json:"user_id"`
	RegenerationsAdded int     `json:"regenerations_added"`
	AmountPaid         float64 `json:"amount_paid"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPlanGenerated publishes a plan-generated event for async consumers.
	PublishPlanGenerated(ctx context.Context, event *PlanGeneratedEvent) error

	// PublishRegenerationsPurchased publishes a purchase event for async consumers.
	PublishRegenerationsPurchased(ctx context.Context, event *RegenerationsPurchasedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
