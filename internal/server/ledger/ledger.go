// Package ledger is the token-transfer facility the vault moves funds with.
//
// Accounts hold a single asset and name one authority. Only that authority may
// debit the account. A transfer either moves the whole amount or nothing.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/accounts"
)

// ErrLedger is wrapped by every rejection the ledger itself produces.
var ErrLedger = errors.New("ledger rejected transfer")

var (
	ErrAccountNotFound       = fmt.Errorf("%w: account not found", ErrLedger)
	ErrAccountExists         = fmt.Errorf("%w: account already exists", ErrLedger)
	ErrInsufficientFunds     = fmt.Errorf("%w: insufficient funds", ErrLedger)
	ErrUnauthorizedAuthority = fmt.Errorf("%w: authority may not debit account", ErrLedger)
	ErrAssetMismatch         = fmt.Errorf("%w: asset mismatch", ErrLedger)
	ErrAmountTooLarge        = fmt.Errorf("%w: amount too large", ErrLedger)
)

// Ledger moves tokens between accounts.
type Ledger interface {
	CreateAccount(ctx context.Context, address, asset, authority string) error
	Balance(ctx context.Context, address string) (uint64, error)
	Transfer(ctx context.Context, from, to, authority string, amount uint64) error
}

// Store is a Ledger backed by an accounts repository. Bind it to a
// transaction-scoped repository to make several transfers atomic.
type Store struct {
	repo accounts.Repository
}

func New(repo accounts.Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) CreateAccount(ctx context.Context, address, asset, authority string) error {
	err := s.repo.Create(ctx, &models.Account{Address: address, Asset: asset, Authority: authority})
	if errors.Is(err, common.ErrorAlreadyExists) {
		return fmt.Errorf("%w: %s", ErrAccountExists, address)
	}
	return err
}

func (s *Store) Balance(ctx context.Context, address string) (uint64, error) {
	acc, err := s.get(ctx, address)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// Transfer debits from and credits to by amount. Both rows are locked in
// address order so concurrent transfers between the same pair cannot deadlock.
// A zero amount is validated like any other but changes no balances.
func (s *Store) Transfer(ctx context.Context, from, to, authority string, amount uint64) error {
	if amount > math.MaxInt64 {
		return ErrAmountTooLarge
	}

	first, second := from, to
	if second < first {
		first, second = second, first
	}

	locked := make(map[string]*models.Account, 2)
	for _, addr := range []string{first, second} {
		if _, ok := locked[addr]; ok {
			continue
		}
		acc, err := s.get(ctx, addr)
		if err != nil {
			return err
		}
		locked[addr] = acc
	}

	src, dst := locked[from], locked[to]
	if src.Authority != authority {
		return ErrUnauthorizedAuthority
	}
	if src.Asset != dst.Asset {
		return ErrAssetMismatch
	}
	if src.Balance < amount {
		return ErrInsufficientFunds
	}
	if dst.Balance > math.MaxInt64-amount {
		return ErrAmountTooLarge
	}

	if amount == 0 || from == to {
		return nil
	}

	if err := s.repo.AddBalance(ctx, from, -int64(amount)); err != nil {
		return fmt.Errorf("debit %s: %w", from, err)
	}
	if err := s.repo.AddBalance(ctx, to, int64(amount)); err != nil {
		return fmt.Errorf("credit %s: %w", to, err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, address string) (*models.Account, error) {
	acc, err := s.repo.GetForUpdate(ctx, address)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}
	return acc, err
}
