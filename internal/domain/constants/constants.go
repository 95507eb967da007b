// Package constants holds shared domain constants.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event type attribute values attached to published messages.
const (
	EventTypePlanGenerated          = "plan.generated"
	EventTypeRegenerationsPurchased = "regenerations.purchased"
)
