// Package delivery defines the contract shared by every inbound adapter (HTTP API, worker, scheduler).
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
