// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running server owned by the fx application. Serve blocks
// until the server stops; shutdown happens through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
