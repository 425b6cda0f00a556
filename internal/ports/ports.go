// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never gorm models or wire DTOs
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
package ports
