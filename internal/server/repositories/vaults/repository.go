package vaults

import (
	"context"

	"github.com/dmitrijs2005/timevault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, v *models.Vault) error
	Get(ctx context.Context, address string) (*models.Vault, error)
	GetForUpdate(ctx context.Context, address string) (*models.Vault, error)
	UpdateLock(ctx context.Context, address string, lockPeriod uint64, unlockTimestamp int64) error

	CreateFeePool(ctx context.Context, fp *models.FeePool) error
	GetFeePool(ctx context.Context) (*models.FeePool, error)
}
