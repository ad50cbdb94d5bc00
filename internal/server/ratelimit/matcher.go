package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for routes that must never be throttled
var unlimited = EndpointConfig{}

// MatchEndpoint returns the configuration governing a request, or nil to use the default limit.
// An exact path wins over prefixes; among prefixes (paths ending in "/") the longest wins.
// An empty Method matches every method.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && (method == http.MethodGet || method == http.MethodHead) {
		u := unlimited
		return &u
	}

	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != "" && config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if !strings.HasSuffix(config.Path, "/") || !strings.HasPrefix(path, config.Path) {
			continue
		}
		if best == nil || len(config.Path) > len(best.Path) {
			best = config
		}
	}
	return best
}
