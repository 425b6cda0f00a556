package flags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic_IsEnabled(t *testing.T) {
	s := NewStatic(map[string]bool{
		"campaign-override": false,
		"New-Layout":        true,
	})

	tests := []struct {
		name         string
		flag         string
		defaultValue bool
		want         bool
	}{
		{"configured off", "campaign-override", true, false},
		{"configured on, mixed case", "new-layout", false, true},
		{"missing uses default true", "unknown", true, true},
		{"missing uses default false", "unknown", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsEnabled(context.Background(), tt.flag, tt.defaultValue))
		})
	}
}

func TestStatic_Set(t *testing.T) {
	s := NewStatic(nil)
	ctx := context.Background()

	assert.True(t, s.IsEnabled(ctx, "campaign-override", true))

	s.Set("campaign-override", false)
	assert.False(t, s.IsEnabled(ctx, "campaign-override", true))
	assert.Equal(t, "flags", s.Name())
	assert.NoError(t, s.Check(ctx))
}
