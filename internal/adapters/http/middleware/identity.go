package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteday/internal/app"
	"github.com/jsamuelsen/quoteday/internal/domain"
	"github.com/jsamuelsen/quoteday/internal/platform/config"
)

const (
	// HeaderClientID carries the anonymous device token.
	HeaderClientID = "X-Client-Id"

	// QueryClientID is the query fallback for the anonymous token.
	QueryClientID = "client_id"

	// ContextKeyIdentity is the gin context key for the resolved identity.
	ContextKeyIdentity = "identity"
)

// IdentityResolver turns request credentials into an identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, creds app.Credentials) (domain.Identity, error)
}

// Identity returns middleware that resolves the caller once per request and
// stores the result for handlers. Unresolved callers pass through; mutating
// handlers reject them. Resolution failures abort with the mapped error.
func Identity(resolver IdentityResolver, cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getOrExtractClaims(c, cfg)

		identity, err := resolver.Resolve(c.Request.Context(), app.Credentials{
			Subject:        claims.Subject,
			Token:          authorizationToken(c.GetHeader("Authorization")),
			HeaderClientID: c.GetHeader(HeaderClientID),
			QueryClientID:  c.Query(QueryClientID),
		})
		if err != nil {
			dto.AbortWithError(c, err)
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Next()
	}
}

// GetIdentity returns the identity Identity stored, or Unresolved.
func GetIdentity(c *gin.Context) domain.Identity {
	if v, ok := c.Get(ContextKeyIdentity); ok {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}

	return domain.Unresolved()
}

// authorizationToken accepts "Token <t>" (the mobile client's scheme) and
// "Bearer <t>".
func authorizationToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return ""
	}

	switch strings.ToLower(scheme) {
	case "token", "bearer":
		return strings.TrimSpace(token)
	default:
		return ""
	}
}
