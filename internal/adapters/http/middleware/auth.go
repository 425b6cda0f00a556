package middleware

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteday/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteday/internal/platform/config"
)

const (
	// ContextKeyClaims is the gin context key for storing extracted claims.
	ContextKeyClaims = "claims"

	defaultSubjectHeader = "X-User-ID"
	defaultRolesHeader   = "X-User-Roles"
	defaultScopesHeader  = "X-User-Scopes"
)

// Claims are the caller attributes an upstream gateway verified and passed
// on as headers.
type Claims struct {
	// Subject is the account id (sub claim).
	Subject string

	// Roles is the list of roles assigned to the account.
	Roles []string

	// Scopes is the list of OAuth2 scopes granted.
	Scopes []string
}

// HasRole checks if the caller has the specified role.
func (c *Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// HasAnyRole checks if the caller has any of the specified roles.
func (c *Claims) HasAnyRole(roles ...string) bool {
	return slices.ContainsFunc(roles, c.HasRole)
}

// HasScope checks if the caller has the specified scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ExtractClaims reads gateway headers. When cfg is nil or disabled the
// headers are not trusted and empty claims are returned.
func ExtractClaims(c *gin.Context, cfg *config.AuthConfig) *Claims {
	if cfg == nil || !cfg.Enabled {
		return &Claims{}
	}

	subjectHeader := cmp.Or(cfg.SubjectHeader, defaultSubjectHeader)
	rolesHeader := cmp.Or(cfg.RolesHeader, defaultRolesHeader)
	scopesHeader := cmp.Or(cfg.ScopesHeader, defaultScopesHeader)

	claims := &Claims{
		Subject: strings.TrimSpace(c.GetHeader(subjectHeader)),
	}

	// Roles are comma-separated, scopes space-separated per OAuth2.
	if roles := c.GetHeader(rolesHeader); roles != "" {
		claims.Roles = parseCommaSeparated(roles)
	}

	if scopes := c.GetHeader(scopesHeader); scopes != "" {
		claims.Scopes = strings.Fields(scopes)
	}

	return claims
}

// GetClaims retrieves claims from the gin context, or nil.
func GetClaims(c *gin.Context) *Claims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		if cl, ok := claims.(*Claims); ok {
			return cl
		}
	}

	return nil
}

// RequireAnyRole returns middleware that requires at least one of the roles.
// Callers without a subject get 401, callers lacking the role 403.
func RequireAnyRole(cfg *config.AuthConfig, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getOrExtractClaims(c, cfg)

		if claims.Subject == "" {
			dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, "authentication required")
			return
		}

		if !claims.HasAnyRole(roles...) {
			dto.AbortWithCode(c, dto.ErrorCodeForbidden,
				"insufficient permissions: one of roles ["+strings.Join(roles, ", ")+"] required")

			return
		}

		c.Next()
	}
}

func getOrExtractClaims(c *gin.Context, cfg *config.AuthConfig) *Claims {
	if claims := GetClaims(c); claims != nil {
		return claims
	}

	claims := ExtractClaims(c, cfg)
	c.Set(ContextKeyClaims, claims)

	return claims
}

// parseCommaSeparated splits a comma-separated string into trimmed values.
func parseCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
