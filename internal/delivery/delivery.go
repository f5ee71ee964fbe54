// Package delivery defines the interface every transport-level server
// (HTTP, worker, ...) implements so main can run them uniformly.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops
// or the context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
