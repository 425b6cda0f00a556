package acl

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jsamuelsen/quoteday/internal/adapters/clients"
	"github.com/jsamuelsen/quoteday/internal/domain"
)

// Account provider endpoints.
const (
	DefaultSessionPath = "/v1/sessions/current"
	DefaultHealthPath  = "/-/live"
)

// AccountClient resolves bearer tokens against the account provider.
// It implements ports.AccountResolver and ports.HealthChecker.
type AccountClient struct {
	BaseAdapter

	sessionPath string
	healthPath  string
}

// AccountClientOption customizes an AccountClient.
type AccountClientOption func(*AccountClient)

// WithSessionPath overrides the token lookup path.
func WithSessionPath(path string) AccountClientOption {
	return func(c *AccountClient) { c.sessionPath = path }
}

// WithHealthPath overrides the liveness path probed by Check.
func WithHealthPath(path string) AccountClientOption {
	return func(c *AccountClient) { c.healthPath = path }
}

// NewAccountClient creates an account provider adapter.
func NewAccountClient(client *clients.Client, opts ...AccountClientOption) *AccountClient {
	c := &AccountClient{
		BaseAdapter: NewBaseAdapter(client),
		sessionPath: DefaultSessionPath,
		healthPath:  DefaultHealthPath,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// sessionResponse is the provider's view of the token owner.
type sessionResponse struct {
	Account struct {
		ID       string `json:"id"`
		IsActive *bool  `json:"is_active"`
	} `json:"account"`
}

// ResolveAccount returns the account id that owns token. Rejected tokens,
// including 403 and inactive accounts, are Unauthenticated so the caller can
// fall back to anonymous credentials; any other failure is Unavailable.
func (c *AccountClient) ResolveAccount(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.NewUnauthenticatedError("empty token")
	}

	header := http.Header{"Authorization": {"Bearer " + token}}

	body, err := c.Get(ctx, c.sessionPath, header, "resolve account")
	if err != nil {
		if domain.IsForbidden(err) {
			return "", domain.NewUnauthenticatedError(err.Error())
		}

		return "", err
	}

	resp, err := DecodeResponse[sessionResponse](body)
	if err != nil {
		return "", domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	return c.translate(resp)
}

func (c *AccountClient) translate(resp *sessionResponse) (string, error) {
	if err := ValidateRequired(resp.Account.ID, "account.id"); err != nil {
		return "", domain.NewUnavailableError(c.ServiceName(), fmt.Sprintf("malformed session: %v", err))
	}

	if resp.Account.IsActive != nil && !*resp.Account.IsActive {
		return "", domain.NewUnauthenticatedError("account is inactive")
	}

	return resp.Account.ID, nil
}

// Name implements ports.HealthChecker.
func (c *AccountClient) Name() string {
	return "accounts"
}

// Check implements ports.HealthChecker.
func (c *AccountClient) Check(ctx context.Context) error {
	body, err := c.Get(ctx, c.healthPath, nil, "health check")
	if err != nil {
		return err
	}

	return body.Close()
}
