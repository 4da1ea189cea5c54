// Package service defines interfaces for external collaborators the domain
// depends on but does not implement.
package service

import "context"

// Principal is the identity extracted from a verified bearer token.
type Principal struct {
	UID   string
	Email string
	Name  string
}

// TokenVerifier validates a raw bearer token against the external identity
// provider and extracts the verified principal.
type TokenVerifier interface {
	// Verify blocks on the provider round-trip and returns the principal,
	// or domainerrors.ErrUnauthenticated when the token is rejected.
	Verify(ctx context.Context, token string) (*Principal, error)
}
