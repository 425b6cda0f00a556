package domain

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetKind(t *testing.T) {
	tests := []struct {
		in      string
		want    TargetKind
		wantErr bool
	}{
		{"", TargetQuote, false},
		{"quote", TargetQuote, false},
		{"Campaign", TargetCampaign, false},
		{"article", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTargetKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTarget(t *testing.T) {
	got, err := NewTarget(TargetQuote, 10)
	require.NoError(t, err)
	assert.Equal(t, "quote:10", got.String())

	_, err = NewTarget(TargetQuote, 0)
	assert.True(t, IsValidation(err))

	_, err = NewTarget("poll", 1)
	assert.True(t, IsValidation(err))
}

func TestIdentity(t *testing.T) {
	t.Run("zero value is unresolved", func(t *testing.T) {
		var id Identity
		assert.False(t, id.IsResolved())
		assert.Equal(t, IdentityUnresolved, id.Kind())
		assert.Equal(t, Unresolved(), id)
	})

	t.Run("account", func(t *testing.T) {
		id := AccountIdentity(" u-1 ")
		assert.Equal(t, IdentityAccount, id.Kind())
		assert.Equal(t, "u-1", id.AccountID())
		assert.Empty(t, id.ClientToken())
	})

	t.Run("empty account is unresolved", func(t *testing.T) {
		assert.False(t, AccountIdentity("").IsResolved())
	})

	t.Run("anonymous", func(t *testing.T) {
		id, err := AnonymousIdentity("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)
		assert.Equal(t, IdentityAnonymous, id.Kind())
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.ClientToken())
		assert.Empty(t, id.AccountID())
	})

	t.Run("blank anonymous token is unresolved", func(t *testing.T) {
		id, err := AnonymousIdentity("   ")
		require.NoError(t, err)
		assert.False(t, id.IsResolved())
	})

	t.Run("token at limit", func(t *testing.T) {
		_, err := AnonymousIdentity(strings.Repeat("a", MaxClientTokenLength))
		assert.NoError(t, err)
	})

	t.Run("token over limit", func(t *testing.T) {
		_, err := AnonymousIdentity(strings.Repeat("a", MaxClientTokenLength+1))
		require.Error(t, err)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "client_id", vErr.Field)
	})
}

func TestIdentity_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	id, err := AnonymousIdentity("abcdefghijklmnop")
	require.NoError(t, err)

	logger.Info("toggle", slog.Any("identity", id))

	out := buf.String()
	assert.Contains(t, out, `"client":"abcdefgh..."`)
	assert.NotContains(t, out, "abcdefghijklmnop")
	assert.Contains(t, out, `"kind":"anonymous"`)
}
