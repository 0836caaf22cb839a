package accounts

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// Repository stores ledger token accounts.
type Repository interface {
	Create(ctx context.Context, acc *models.Account) error
	// GetForUpdate reads the account and, inside a transaction, keeps its row
	// locked until commit.
	GetForUpdate(ctx context.Context, address string) (*models.Account, error)
	AddBalance(ctx context.Context, address string, delta int64) error
}
