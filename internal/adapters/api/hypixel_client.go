package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/skyblock-tools/skyblock-checker/internal/domain/player"
	"github.com/skyblock-tools/skyblock-checker/internal/domain/skyblock"
)

const (
	defaultHypixelBaseURL = "https://api.hypixel.net"
	profilesPath          = "/v2/skyblock/profiles"

	// Hypixel default budget is well above this; the limiter only paces
	// outbound calls, it never retries after a 429.
	defaultRateLimitRequests = 2
	defaultRateLimitBurst    = 2
)

// HypixelConfig controls how the Hypixel client reaches the upstream API.
type HypixelConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RateLimitRequests int
	RateLimitBurst    int
	HTTPClient        *http.Client
	Logger            zerolog.Logger
}

// HypixelClient fetches SkyBlock profiles from the Hypixel API.
type HypixelClient struct {
	baseURL     string
	httpClient  httpDoer
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewHypixelClient constructs a Hypixel client with the provided configuration.
func NewHypixelClient(cfg HypixelConfig) *HypixelClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultHypixelBaseURL
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

	requests := cfg.RateLimitRequests
	if requests <= 0 {
		requests = defaultRateLimitRequests
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = defaultRateLimitBurst
	}

	return &HypixelClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  client,
		rateLimiter: rate.NewLimiter(rate.Limit(requests), burst),
		logger:      cfg.Logger,
	}
}

// FetchProfiles retrieves the player's SkyBlock profiles. One GET, no
// retries; every failure is terminal for the run.
func (c *HypixelClient) FetchProfiles(ctx context.Context, id player.UUID, apiKey string) (skyblock.ProfilesResult, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return skyblock.ProfilesResult{}, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+profilesPath, nil)
	if err != nil {
		return skyblock.ProfilesResult{}, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("uuid", id.String())
	req.URL.RawQuery = q.Encode()
	req.Header.Set("API-Key", apiKey)

	c.logger.Debug().
		Str("url", c.baseURL+profilesPath).
		Str("uuid", id.String()).
		Msg("hypixel api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return skyblock.ProfilesResult{}, &skyblock.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return skyblock.ProfilesResult{}, &skyblock.NetworkError{Err: err}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Interface("headers", resp.Header).
		Str("body", truncate(string(body), 1000)).
		Msg("hypixel api response")

	// Checked in priority order; 429 wins over everything else.
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		c.logRateLimitHeaders(resp.Header)
		return skyblock.ProfilesResult{}, skyblock.ErrRateLimited
	case http.StatusForbidden:
		return skyblock.ProfilesResult{}, skyblock.ErrAccessDenied
	case http.StatusNotFound:
		return skyblock.ProfilesResult{}, skyblock.ErrPlayerNotFound
	case http.StatusUnprocessableEntity:
		return skyblock.ProfilesResult{}, skyblock.ErrInvalidInput
	case http.StatusOK:
	default:
		return skyblock.ProfilesResult{}, &skyblock.StatusError{Status: resp.StatusCode}
	}

	var payload struct {
		Success  bool               `json:"success"`
		Cause    string             `json:"cause"`
		Profiles []skyblock.Profile `json:"profiles"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return skyblock.ProfilesResult{}, fmt.Errorf("invalid JSON response from Hypixel API: %w", err)
	}

	if !payload.Success {
		cause := payload.Cause
		if cause == "" {
			cause = "Unknown error"
		}
		return skyblock.ProfilesResult{}, &skyblock.APIError{Cause: cause}
	}

	profiles := payload.Profiles
	if profiles == nil {
		profiles = []skyblock.Profile{}
	}

	return skyblock.ProfilesResult{Profiles: profiles, RawBody: body}, nil
}

// logRateLimitHeaders surfaces the server's rate-limit headers at debug
// level when a 429 comes back.
func (c *HypixelClient) logRateLimitHeaders(headers http.Header) {
	limits := map[string]string{}
	for key, values := range headers {
		lower := strings.ToLower(key)
		if strings.Contains(lower, "ratelimit") || strings.Contains(lower, "retry") {
			limits[key] = strings.Join(values, ",")
		}
	}
	if len(limits) > 0 {
		c.logger.Debug().Interface("headers", limits).Msg("rate limit headers")
	}
}
