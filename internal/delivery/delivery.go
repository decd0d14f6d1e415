// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops or
// fails; shutdown is driven by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
