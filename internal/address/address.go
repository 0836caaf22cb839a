// Package address derives the deterministic identities the vault uses for
// its records and token accounts.
//
// An address is base58(BLAKE2b-256(Program || seed_1 || ... || seed_n)),
// where every seed is length-prefixed so that ("ab","c") and ("a","bc")
// never collide. The same seeds always yield the same address, which is what
// lets the service find a user's record and pool without storing a pointer
// to them anywhere.
package address

import (
	"encoding/binary"
	"errors"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// Program namespaces every derived address to this vault deployment.
const Program = "timevault/v1"

// Well-known seed labels.
const (
	SeedUserVault      = "user_vault"
	SeedTokenVault     = "token_vault"
	SeedFeeVault       = "fee_vault"
	SeedVaultAuthority = "vault-authority"
	SeedWallet         = "wallet"
)

// Size is the length of a decoded address.
const Size = blake2b.Size256

var ErrInvalidAddress = errors.New("invalid address")

// Address is the base58 text form of a derived identity.
type Address string

func (a Address) String() string { return string(a) }

// Derive hashes the seeds into an address.
func Derive(seeds ...string) Address {
	h, _ := blake2b.New256(nil)
	write(h, Program)
	for _, s := range seeds {
		write(h, s)
	}
	return Address(base58.Encode(h.Sum(nil)))
}

type writer interface{ Write([]byte) (int, error) }

func write(w writer, s string) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(s)))
	_, _ = w.Write(n[:])
	_, _ = w.Write([]byte(s))
}

// Validate checks that a decodes to a 32-byte identity.
func Validate(a string) error {
	b, err := base58.Decode(a)
	if err != nil || len(b) != Size {
		return ErrInvalidAddress
	}
	return nil
}

// UserVault is the address of the user's vault record.
func UserVault(user string) Address { return Derive(SeedUserVault, user) }

// PrincipalPool is the token account holding the user's deposits.
func PrincipalPool(user string) Address { return Derive(SeedTokenVault, user) }

// FeePool is the single shared fee account.
func FeePool() Address { return Derive(SeedFeeVault) }

// VaultAuthority signs every transfer out of vault-owned accounts. It holds
// no funds and no key; the ledger grants it by identity.
func VaultAuthority() Address { return Derive(SeedVaultAuthority) }

// Wallet is the user's own funding account for asset.
func Wallet(user, asset string) Address { return Derive(SeedWallet, user, asset) }
