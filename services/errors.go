package services

import "errors"

// Sentinel errors; controllers map these to HTTP statuses with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidOptions     = errors.New("invalid option selection")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrNoBillingDraft     = errors.New("billing details missing")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrInvalidStatus      = errors.New("invalid order status")
)
