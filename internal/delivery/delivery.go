// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a server that accepts external traffic. Implementations
// register their own shutdown hooks; Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
