package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyblock-tools/skyblock-checker/internal/domain/player"
)

const (
	defaultMojangBaseURL = "https://api.mojang.com"
	defaultTimeout       = 10 * time.Second
)

// httpDoer lets tests substitute the HTTP client.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// MojangConfig controls how the Mojang client reaches the upstream API.
type MojangConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// MojangClient resolves Minecraft usernames to UUIDs via the Mojang API.
// Resolutions are memoized for the lifetime of the client, keyed by
// lowercased username, so repeated lookups in one run never hit the
// network twice.
type MojangClient struct {
	baseURL    string
	httpClient httpDoer
	logger     zerolog.Logger
	cache      map[string]player.Identity
}

// NewMojangClient constructs a Mojang client with the provided configuration.
func NewMojangClient(cfg MojangConfig) *MojangClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMojangBaseURL
	}

	var client httpDoer
	if cfg.HTTPClient != nil {
		client = cfg.HTTPClient
	} else {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &MojangClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		logger:     cfg.Logger,
		cache:      make(map[string]player.Identity),
	}
}

// Resolve maps a username to its canonical identity. Cache check first;
// otherwise a single GET with no retries.
func (c *MojangClient) Resolve(ctx context.Context, username string) (player.Identity, error) {
	cacheKey := strings.ToLower(username)
	if identity, ok := c.cache[cacheKey]; ok {
		c.logger.Debug().
			Str("username", username).
			Str("uuid", identity.UUID.String()).
			Msg("found cached uuid for username")
		return identity, nil
	}

	endpoint := fmt.Sprintf("%s/users/profiles/minecraft/%s", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return player.Identity{}, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", endpoint).Msg("mojang api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return player.Identity{}, &player.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return player.Identity{}, &player.NetworkError{Err: err}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Interface("headers", resp.Header).
		Str("body", truncate(string(body), 500)).
		Msg("mojang api response")

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound:
		return player.Identity{}, &player.NotFoundError{Username: username}
	case resp.StatusCode != http.StatusOK:
		return player.Identity{}, &player.LookupStatusError{Status: resp.StatusCode}
	}

	var payload struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return player.Identity{}, fmt.Errorf("invalid JSON response from Mojang API: %w", err)
	}
	if payload.ID == "" {
		return player.Identity{}, player.ErrMalformedResponse
	}

	id, err := player.ParseUUID(payload.ID)
	if err != nil {
		return player.Identity{}, player.ErrMalformedResponse
	}

	identity := player.Identity{UUID: id, Username: payload.Name}
	c.cache[cacheKey] = identity

	c.logger.Debug().
		Str("username", username).
		Str("uuid", id.String()).
		Msg("username resolved")

	return identity, nil
}

// truncate caps s for debug logging.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
