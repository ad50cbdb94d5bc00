package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration // buckets unused for this long are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns a configuration limiting the AI and export endpoints
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: EndpointConfigs(20, 5, 30, 10),
	}
}

// EndpointConfigs returns the per-endpoint limits for the AI and export routes.
// Both are POST-only and share one bucket per client across their sub-paths.
func EndpointConfigs(aiPerMinute, aiBurst, exportPerMinute, exportBurst int) []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: simulated AI calls
		{Path: "/api/ai/", Method: "POST", Limit: aiPerMinute, Window: time.Minute, Burst: aiBurst},
		// Tier 2: document exports
		{Path: "/api/export/", Method: "POST", Limit: exportPerMinute, Window: time.Minute, Burst: exportBurst},
		// Everything else uses the default limit; /health is unlimited
	}
}

// ParseIPList parses a comma-separated list of IP addresses into a set.
func ParseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
