package config

import "time"

// SetDefaults applies default values for any missing configuration
func SetDefaults(cfg *Config) {
	if cfg.API.MojangBaseURL == "" {
		cfg.API.MojangBaseURL = "https://api.mojang.com"
	}
	if cfg.API.HypixelBaseURL == "" {
		cfg.API.HypixelBaseURL = "https://api.hypixel.net"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 10 * time.Second
	}
	if cfg.API.RateLimit.Requests == 0 {
		cfg.API.RateLimit.Requests = 2
	}
	if cfg.API.RateLimit.Burst == 0 {
		cfg.API.RateLimit.Burst = 2
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}
