// Package acl translates downstream service payloads and failures into
// domain types so that nothing outside this package depends on a remote
// API's shape.
//
// Status and transport failures map as follows:
//   - 401 → [domain.ErrUnauthenticated]
//   - 403 → [domain.ErrForbidden]
//   - 404 → [domain.ErrNotFound]
//   - 400/422 → [domain.ErrValidation]
//   - 429, 5xx, open circuit, exhausted retries → [domain.ErrUnavailable]
//
// [AccountClient] is the adapter for the account provider.
package acl
