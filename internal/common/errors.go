// Package common defines shared constants and sentinel errors used across
// the vault server and client. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Vault errors. Every one of them rejects the whole operation.
	ErrMissingSignature         = errors.New("user signature is missing")
	ErrInvalidLockPeriod        = errors.New("invalid lock period")
	ErrInvalidExtendPeriod      = errors.New("invalid extend period")
	ErrInvalidAmount            = errors.New("amount must be positive")
	ErrInvalidAsset             = errors.New("invalid asset")
	ErrArithmetic               = errors.New("arithmetic error during fee calculation")
	ErrInsufficientAmount       = errors.New("insufficient amount to cover fee")
	ErrInsufficientVaultBalance = errors.New("insufficient balance in vault")
	ErrAlreadyProvisioned       = errors.New("already provisioned")
	ErrNotProvisioned           = errors.New("not provisioned")
)
