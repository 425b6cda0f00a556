// Package flags provides feature flag sources.
package flags

import (
	"context"
	"strings"
	"sync"
)

// Static serves flags from configuration. Flag names are case-insensitive.
type Static struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewStatic creates a flag source from the features config section.
func NewStatic(values map[string]bool) *Static {
	s := &Static{flags: make(map[string]bool, len(values))}
	for k, v := range values {
		s.flags[normalize(k)] = v
	}

	return s
}

// IsEnabled implements ports.FeatureFlags.
func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.flags[normalize(flag)]
	if !ok {
		return defaultValue
	}

	return v
}

// Set overrides a flag at runtime, for example from an admin hook or a test.
func (s *Static) Set(flag string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flags[normalize(flag)] = enabled
}

// Name implements ports.HealthChecker.
func (s *Static) Name() string {
	return "flags"
}

// Check implements ports.HealthChecker. A static source is always available.
func (s *Static) Check(context.Context) error {
	return nil
}

// koanf lowercases keys loaded from env, so lookups do the same.
func normalize(flag string) string {
	return strings.ToLower(strings.TrimSpace(flag))
}
