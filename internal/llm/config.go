// Package llm maps the AI services a user can pick to the models that back them.
// The assistant resolves every request through this registry so the response can
// report which model handled it.
package llm

import (
	"fmt"
	"sync"

	"github.com/jonathan/cv-builder/internal/types"
)

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: text review, keyword matching
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: analysis, translation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: adapting a whole CV
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for one AI service
type Config struct {
	Service types.AIService
	Models  map[ModelTier]string
}

// UnknownServiceError is returned when a service has no configuration
type UnknownServiceError struct {
	Service types.AIService
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown AI service %q", e.Service)
}

var defaults = map[types.AIService]map[ModelTier]string{
	types.ServiceGemini: {
		TierLite:     "gemini-2.5-flash-lite",
		TierStandard: "gemini-2.5-flash",
		TierAdvanced: "gemini-2.5-pro",
	},
	types.ServiceOpenAI: {
		TierLite:     "gpt-4o-mini",
		TierStandard: "gpt-4o",
		TierAdvanced: "o1",
	},
	types.ServiceClaude: {
		TierLite:     "claude-3-5-haiku",
		TierStandard: "claude-3-5-sonnet",
		TierAdvanced: "claude-3-opus",
	},
}

// DefaultConfig returns the default configuration for service
func DefaultConfig(service types.AIService) (*Config, error) {
	models, ok := defaults[service]
	if !ok {
		return nil, &UnknownServiceError{Service: service}
	}
	cfg := &Config{Service: service, Models: make(map[ModelTier]string, len(models))}
	for tier, model := range models {
		cfg.Models[tier] = model
	}
	return cfg, nil
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Service: c.Service,
		Models:  make(map[ModelTier]string, len(c.Models)+1),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

// Registry resolves services to their configuration
type Registry struct {
	mu      sync.RWMutex
	configs map[types.AIService]*Config
}

// NewRegistry creates a registry holding the default configuration of every service
func NewRegistry() *Registry {
	r := &Registry{configs: make(map[types.AIService]*Config, len(defaults))}
	for _, service := range types.AIServices {
		cfg, _ := DefaultConfig(service)
		r.configs[service] = cfg
	}
	return r
}

// Override replaces the model used for one service and tier
func (r *Registry) Override(service types.AIService, tier ModelTier, model string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg, ok := r.configs[service]
	if !ok {
		return &UnknownServiceError{Service: service}
	}
	r.configs[service] = cfg.WithModel(tier, model)
	return nil
}

// Lookup returns the configuration for service
func (r *Registry) Lookup(service types.AIService) (*Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[service]
	if !ok {
		return nil, &UnknownServiceError{Service: service}
	}
	return cfg, nil
}

// Model returns the model serving tier for service
func (r *Registry) Model(service types.AIService, tier ModelTier) (string, error) {
	cfg, err := r.Lookup(service)
	if err != nil {
		return "", err
	}
	return cfg.GetModel(tier), nil
}
