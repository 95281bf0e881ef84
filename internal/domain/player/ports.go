package player

import (
	"context"
	"errors"
	"fmt"
)

// Identity pairs a canonical UUID with the authoritative username echoed
// back by the name-lookup service.
type Identity struct {
	UUID     UUID
	Username string
}

// Resolver maps a display name to the player's identity.
//
// Returns NotFoundError if the username does not exist. Other failures are
// one of the types below; none are retried.
type Resolver interface {
	Resolve(ctx context.Context, username string) (Identity, error)
}

// ErrMalformedResponse is returned when the lookup service answers 200 but
// the body carries no identifier.
var ErrMalformedResponse = errors.New("invalid response from name lookup service")

// NotFoundError reports a username unknown to the name-lookup service.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("username %q not found", e.Username)
}

// LookupStatusError reports an unexpected HTTP status from the name-lookup
// service.
type LookupStatusError struct {
	Status int
}

func (e *LookupStatusError) Error() string {
	return fmt.Sprintf("failed to resolve username (HTTP %d)", e.Status)
}

// NetworkError wraps transport-level failures during resolution.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error while resolving username: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
