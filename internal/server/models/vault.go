// Package models defines server-side data models persisted in the database.
package models

import "time"

// Vault is the per-user record. It is created once by provisioning and only
// its lock fields change afterwards.
type Vault struct {
	// Address is the derived identity of the record itself.
	Address string
	// Owner is the user identity that controls the record.
	Owner string
	// Asset is the token the vault is denominated in. Never changes.
	Asset string
	// PoolAddress is the principal pool token account for Owner.
	PoolAddress string
	// LockPeriod is the lock, in seconds, requested by the last deposit.
	LockPeriod uint64
	// UnlockTimestamp is the unix second from which the lower fee tier applies.
	UnlockTimestamp int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Locked reports whether a withdrawal at now falls in the higher fee tier.
func (v *Vault) Locked(now int64) bool {
	return now < v.UnlockTimestamp
}

// FeePool is the singleton row describing the shared fee account.
type FeePool struct {
	Address     string
	Asset       string
	Initializer string
	CreatedAt   time.Time
}
