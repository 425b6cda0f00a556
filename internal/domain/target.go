package domain

import (
	"strconv"
	"strings"
)

// TargetKind discriminates the two content variants an engagement action can target.
type TargetKind string

// Target kinds.
const (
	TargetQuote    TargetKind = "quote"
	TargetCampaign TargetKind = "campaign"
)

// String implements fmt.Stringer.
func (k TargetKind) String() string {
	return string(k)
}

// Valid reports whether k is a known kind.
func (k TargetKind) Valid() bool {
	return k == TargetQuote || k == TargetCampaign
}

// ParseTargetKind parses a kind name. Empty input defaults to TargetQuote,
// which is what legacy clients send implicitly.
func ParseTargetKind(s string) (TargetKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TargetQuote, nil
	}

	k := TargetKind(s)
	if !k.Valid() {
		return "", NewValidationErrorWithValue("target_kind", "must be quote or campaign", s)
	}

	return k, nil
}

// Target identifies one content row.
type Target struct {
	Kind TargetKind
	ID   int64
}

// NewTarget validates and builds a target.
func NewTarget(kind TargetKind, id int64) (Target, error) {
	if !kind.Valid() {
		return Target{}, NewValidationErrorWithValue("target_kind", "must be quote or campaign", string(kind))
	}

	if id <= 0 {
		return Target{}, NewValidationErrorWithValue("target_id", "must be positive", id)
	}

	return Target{Kind: kind, ID: id}, nil
}

// IDString formats the id for error messages and logs.
func (t Target) IDString() string {
	return strconv.FormatInt(t.ID, 10)
}

// String returns "kind:id".
func (t Target) String() string {
	return t.Kind.String() + ":" + t.IDString()
}
