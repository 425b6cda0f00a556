package domain

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// MaxClientTokenLength bounds anonymous tokens. Clients send UUIDs.
const MaxClientTokenLength = 64

// IdentityKind tells which identity scheme a request resolved to.
type IdentityKind int

// Identity kinds.
const (
	IdentityUnresolved IdentityKind = iota
	IdentityAccount
	IdentityAnonymous
)

// String implements fmt.Stringer.
func (k IdentityKind) String() string {
	switch k {
	case IdentityAccount:
		return "account"
	case IdentityAnonymous:
		return "anonymous"
	default:
		return "unresolved"
	}
}

// Identity is the engagement principal for a request. It is either an
// authenticated account or a client-supplied anonymous token, never both.
// The zero value is unresolved.
type Identity struct {
	kind  IdentityKind
	value string
}

// Unresolved returns the identity for requests without credentials.
func Unresolved() Identity {
	return Identity{}
}

// AccountIdentity returns an authenticated identity. An empty id is unresolved.
func AccountIdentity(accountID string) Identity {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return Identity{}
	}

	return Identity{kind: IdentityAccount, value: accountID}
}

// AnonymousIdentity returns an anonymous identity for token. A blank token is
// unresolved; an oversized token is a validation error.
func AnonymousIdentity(token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, nil
	}

	if utf8.RuneCountInString(token) > MaxClientTokenLength {
		return Identity{}, NewValidationError("client_id", "must be at most 64 characters")
	}

	return Identity{kind: IdentityAnonymous, value: token}, nil
}

// Kind returns the identity scheme.
func (i Identity) Kind() IdentityKind {
	return i.kind
}

// IsResolved reports whether the identity can own favorites.
func (i Identity) IsResolved() bool {
	return i.kind != IdentityUnresolved
}

// AccountID returns the account id, or "" for non-account identities.
func (i Identity) AccountID() string {
	if i.kind == IdentityAccount {
		return i.value
	}

	return ""
}

// ClientToken returns the anonymous token, or "" for non-anonymous identities.
func (i Identity) ClientToken() string {
	if i.kind == IdentityAnonymous {
		return i.value
	}

	return ""
}

// LogValue implements slog.LogValuer. Anonymous tokens are shortened so
// raw correlation keys never reach the logs.
func (i Identity) LogValue() slog.Value {
	switch i.kind {
	case IdentityAccount:
		return slog.GroupValue(slog.String("kind", i.kind.String()), slog.String("account_id", i.value))
	case IdentityAnonymous:
		short := i.value
		if len(short) > 8 {
			short = short[:8] + "..."
		}

		return slog.GroupValue(slog.String("kind", i.kind.String()), slog.String("client", short))
	default:
		return slog.GroupValue(slog.String("kind", i.kind.String()))
	}
}
