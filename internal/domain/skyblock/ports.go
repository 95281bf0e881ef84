package skyblock

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyblock-tools/skyblock-checker/internal/domain/player"
)

// ProfilesResult is the successful outcome of one profile fetch. RawBody
// keeps the undecoded response for the --json echo.
type ProfilesResult struct {
	Profiles []Profile
	RawBody  []byte
}

// Client fetches SkyBlock profiles for a player. Every failure is one of
// the closed set of errors below and is terminal for the run; the client
// never retries.
type Client interface {
	FetchProfiles(ctx context.Context, id player.UUID, apiKey string) (ProfilesResult, error)
}

var (
	// ErrRateLimited maps HTTP 429. Surfaced immediately, never retried.
	ErrRateLimited = errors.New("rate limited, please wait a moment and try again")

	// ErrAccessDenied maps HTTP 403.
	ErrAccessDenied = errors.New("invalid API key or access denied")

	// ErrPlayerNotFound maps HTTP 404.
	ErrPlayerNotFound = errors.New("player not found or has no SkyBlock profiles")

	// ErrInvalidInput maps HTTP 422.
	ErrInvalidInput = errors.New("invalid data provided to API")
)

// StatusError reports any other non-200 status from the stats service.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Hypixel API returned HTTP %d", e.Status)
}

// APIError carries the cause reported by the service when the payload's
// success flag is false or absent.
type APIError struct {
	Cause string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Hypixel API request failed - %s", e.Cause)
}

// NetworkError wraps transport-level failures during the fetch.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error while fetching profiles: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
