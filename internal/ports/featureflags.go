package ports

import "context"

// FeatureFlags answers operational switches such as the campaign override
// in content resolution. Unknown flags take the caller's default so a
// missing entry never changes behaviour.
type FeatureFlags interface {
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool
}
