// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is implemented by each server the application exposes.
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
