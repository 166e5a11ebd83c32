package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrNoCodeSent     = errors.New("no code sent")
	ErrCodeExpired    = errors.New("code expired")
	ErrInvalidCode    = errors.New("invalid code")
	ErrDeliveryFailed = errors.New("delivery failed")
	ErrEmailTaken     = errors.New("email already registered")
)
