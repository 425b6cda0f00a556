package ports

import (
	"context"
)

// AccountResolver exchanges a bearer token for an account id with the
// identity provider. Returns domain.ErrUnauthenticated when the provider
// rejects the token and domain.ErrUnavailable when it cannot be reached.
type AccountResolver interface {
	ResolveAccount(ctx context.Context, token string) (string, error)
}
