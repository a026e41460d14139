// internal/services/errors.go
package services

import "errors"

// Sentinel errors form the service-level taxonomy. Handlers map them to
// HTTP statuses; anything else is treated as an internal error and logged
// without leaking details to the caller.
var (
	ErrAgentNotFound    = errors.New("agent not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrValidation       = errors.New("validation failed")
	ErrForbidden        = errors.New("access denied")
	ErrPurchaseRequired = errors.New("purchase required")
	ErrFreeAgent        = errors.New("agent is free")
	ErrExternalService  = errors.New("external service error")
)
