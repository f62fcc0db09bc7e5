// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving front end managed by the composition root. Serve
// blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
