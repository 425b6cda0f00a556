package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/mocks"
)

func TestIdentityService_Resolve(t *testing.T) {
	anon := func(tok string) domain.Identity {
		id, err := domain.AnonymousIdentity(tok)
		require.NoError(t, err)

		return id
	}

	tests := []struct {
		name       string
		creds      Credentials
		setupMocks func(*mocks.MockAccountResolver)
		want       domain.Identity
		errCheck   func(error) bool
	}{
		{
			name:  "gateway subject wins over everything",
			creds: Credentials{Subject: "acct-1", Token: "tok", HeaderClientID: "c-1"},
			want:  domain.AccountIdentity("acct-1"),
		},
		{
			name:  "token resolves to account",
			creds: Credentials{Token: "tok", HeaderClientID: "c-1"},
			setupMocks: func(r *mocks.MockAccountResolver) {
				r.EXPECT().ResolveAccount(mock.Anything, "tok").Return("acct-2", nil)
			},
			want: domain.AccountIdentity("acct-2"),
		},
		{
			name:  "rejected token falls back to header client id",
			creds: Credentials{Token: "stale", HeaderClientID: "c-1"},
			setupMocks: func(r *mocks.MockAccountResolver) {
				r.EXPECT().ResolveAccount(mock.Anything, "stale").Return("", domain.NewUnauthenticatedError("expired"))
			},
			want: anon("c-1"),
		},
		{
			name:  "provider outage fails the request",
			creds: Credentials{Token: "tok", HeaderClientID: "c-1"},
			setupMocks: func(r *mocks.MockAccountResolver) {
				r.EXPECT().ResolveAccount(mock.Anything, "tok").Return("", domain.NewUnavailableError("accounts", "timeout"))
			},
			errCheck: domain.IsUnavailable,
		},
		{
			name:  "header beats query",
			creds: Credentials{HeaderClientID: "h", QueryClientID: "q"},
			want:  anon("h"),
		},
		{
			name:  "query used when header blank",
			creds: Credentials{HeaderClientID: "  ", QueryClientID: "q"},
			want:  anon("q"),
		},
		{
			name:     "oversized token is a validation error",
			creds:    Credentials{HeaderClientID: strings.Repeat("x", 65)},
			errCheck: domain.IsValidation,
		},
		{
			name:  "nothing presented",
			creds: Credentials{},
			want:  domain.Unresolved(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := mocks.NewMockAccountResolver(t)
			if tt.setupMocks != nil {
				tt.setupMocks(resolver)
			}

			svc := NewIdentityService(IdentityServiceConfig{Accounts: resolver, Logger: discardLogger()})

			got, err := svc.Resolve(context.Background(), tt.creds)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error: %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentityService_IgnoresTokenWithoutProvider(t *testing.T) {
	svc := NewIdentityService(IdentityServiceConfig{})

	got, err := svc.Resolve(context.Background(), Credentials{Token: "tok"})

	require.NoError(t, err)
	assert.False(t, got.IsResolved())
}

func TestWithBodyToken(t *testing.T) {
	account := domain.AccountIdentity("acct-1")

	got, err := WithBodyToken(account, "body")
	require.NoError(t, err)
	assert.Equal(t, account, got)

	got, err = WithBodyToken(domain.Unresolved(), "body")
	require.NoError(t, err)
	assert.Equal(t, "body", got.ClientToken())

	got, err = WithBodyToken(domain.Unresolved(), "")
	require.NoError(t, err)
	assert.False(t, got.IsResolved())
}
