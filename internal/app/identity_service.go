// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/ports"
)

// Credentials are the raw identity inputs of one request.
type Credentials struct {
	// Subject is an account id already verified by the gateway.
	Subject string

	// Token is the bearer credential from the Authorization header.
	Token string

	// HeaderClientID and QueryClientID carry the anonymous token.
	HeaderClientID string
	QueryClientID  string
}

// IdentityService turns request credentials into exactly one identity.
type IdentityService struct {
	accounts ports.AccountResolver
	logger   *slog.Logger
}

// IdentityServiceConfig contains configuration for the identity service.
type IdentityServiceConfig struct {
	// Accounts is optional; without it bearer tokens are ignored.
	Accounts ports.AccountResolver
	Logger   *slog.Logger
}

// NewIdentityService creates an identity service.
func NewIdentityService(cfg IdentityServiceConfig) *IdentityService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &IdentityService{accounts: cfg.Accounts, logger: logger}
}

// Resolve applies the precedence gateway subject, bearer token, header
// client id, query client id. A token the provider rejects falls through to
// the anonymous credentials; an unreachable provider fails the request.
func (s *IdentityService) Resolve(ctx context.Context, creds Credentials) (domain.Identity, error) {
	if id := domain.AccountIdentity(creds.Subject); id.IsResolved() {
		return id, nil
	}

	if creds.Token != "" && s.accounts != nil {
		accountID, err := s.accounts.ResolveAccount(ctx, creds.Token)

		switch {
		case err == nil:
			if id := domain.AccountIdentity(accountID); id.IsResolved() {
				return id, nil
			}
		case domain.IsUnauthenticated(err):
			s.logger.DebugContext(ctx, "account token rejected, falling back to anonymous",
				slog.Any("error", err),
			)
		default:
			s.logger.ErrorContext(ctx, "account provider failed", slog.Any("error", err))

			return domain.Unresolved(), err
		}
	}

	for _, token := range []string{creds.HeaderClientID, creds.QueryClientID} {
		id, err := domain.AnonymousIdentity(token)
		if err != nil {
			return domain.Unresolved(), err
		}

		if id.IsResolved() {
			return id, nil
		}
	}

	return domain.Unresolved(), nil
}

// WithBodyToken uses a client_id sent in a request body when the request
// itself carried no identity. Older mobile builds send it only there.
func WithBodyToken(identity domain.Identity, bodyClientID string) (domain.Identity, error) {
	if identity.IsResolved() {
		return identity, nil
	}

	return domain.AnonymousIdentity(bodyClientID)
}
