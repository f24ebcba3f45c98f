// Package delivery holds the transports that expose the application.
package delivery

import "context"

// Delivery is a transport that serves until it is stopped through the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
