// Package delivery defines the entry points that expose the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP, worker, ...). Serve blocks until the
// surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
