// Package common defines shared constants and sentinel errors used across
// the storefront client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Credential token errors (malformed or undecodable token).
	ErrInvalidToken = errors.New("invalid token")
)
