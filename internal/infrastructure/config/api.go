package config

import "time"

// APIConfig holds the outbound HTTP client configuration.
type APIConfig struct {
	// Base URL for the Mojang name-lookup API
	MojangBaseURL string `mapstructure:"mojang_base_url" validate:"required,url"`

	// Base URL for the Hypixel stats API
	HypixelBaseURL string `mapstructure:"hypixel_base_url" validate:"required,url"`

	// Request timeout applied to both services
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`

	// Client-side rate limiting for the Hypixel API
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}
