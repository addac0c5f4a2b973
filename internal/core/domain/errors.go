package domain

import "errors"

// Error kinds surfaced by the core. Lower layers return these sentinels
// (wrapped with context where useful); the API boundary translates them
// into the outcome envelope and an HTTP status.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrAccountExists       = errors.New("user already exists")
	ErrAccountNotFound     = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrInvalidCredentials  = errors.New("incorrect password")
	ErrCorruptCredential   = errors.New("stored credential unreadable")
	ErrStoreUnavailable    = errors.New("datastore unavailable")
)
