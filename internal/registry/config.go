package registry

import (
	"os"
	"strconv"
)

// Config holds the settings for the registry lookup client.
type Config struct {
	Endpoint  string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config pointing at the public BrasilAPI endpoint.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://brasilapi.com.br",
		TimeoutMs: 8000,
		LogCalls:  false,
	}
}

// LoadConfig reads registry configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CATALOGO_REGISTRY_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CATALOGO_REGISTRY_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("CATALOGO_DEBUG"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
