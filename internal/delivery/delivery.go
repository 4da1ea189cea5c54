// Package delivery defines the contract every transport frontend fulfills.
package delivery

import "context"

// Delivery is a serving surface (currently only HTTP) started by the
// composition root and stopped through its fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
