package config

import (
	"fmt"
	"os"
	"strings"
)

// DefaultAPIKey is the compiled-in Hypixel API key. Leave empty and use the
// HYPIXEL_API_KEY environment variable, a config file, or the interactive
// prompt instead. Keys come from https://developer.hypixel.net.
const DefaultAPIKey = ""

// HypixelConfig holds Hypixel credential configuration.
type HypixelConfig struct {
	// API key, usually supplied via config file or SB_HYPIXEL_API_KEY
	APIKey string `mapstructure:"api_key"`
}

// ResolveAPIKey resolves the Hypixel API key in priority order: compiled-in
// constant, HYPIXEL_API_KEY environment variable, configuration, then the
// interactive prompt. An empty answer from the prompt is a fatal input
// error.
func ResolveAPIKey(cfg *Config, prompt func() (string, error)) (string, error) {
	if DefaultAPIKey != "" {
		return DefaultAPIKey, nil
	}

	if key := os.Getenv("HYPIXEL_API_KEY"); key != "" {
		return key, nil
	}

	if cfg.Hypixel.APIKey != "" {
		return cfg.Hypixel.APIKey, nil
	}

	key, err := prompt()
	if err != nil {
		return "", err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("API key cannot be empty")
	}
	return key, nil
}
