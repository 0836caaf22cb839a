// Package vaults provides PostgreSQL-backed storage for per-user vault
// records and the fee pool singleton.
package vaults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

var errLockPeriodRange = errors.New("lock period out of range")

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a fresh record. Any unique conflict (address, owner or pool)
// is reported as common.ErrorAlreadyExists without modifying the stored row.
func (r *PostgresRepository) Create(ctx context.Context, v *models.Vault) error {
	query :=
		`INSERT INTO vaults (address, owner, asset, pool_address)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, v.Address, v.Owner, v.Asset, v.PoolAddress)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorAlreadyExists
	}

	return nil
}

const selectVault = `SELECT address, owner, asset, pool_address, lock_period, unlock_timestamp, created_at, updated_at
		 FROM vaults
		 WHERE address = $1`

func (r *PostgresRepository) Get(ctx context.Context, address string) (*models.Vault, error) {
	return r.get(ctx, selectVault, address)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, address string) (*models.Vault, error) {
	return r.get(ctx, selectVault+"\n\t\t FOR UPDATE", address)
}

func (r *PostgresRepository) get(ctx context.Context, query, address string) (*models.Vault, error) {
	v := &models.Vault{}
	err := r.db.QueryRowContext(ctx, query, address).Scan(
		&v.Address, &v.Owner, &v.Asset, &v.PoolAddress,
		&v.LockPeriod, &v.UnlockTimestamp, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return v, nil
}

func (r *PostgresRepository) UpdateLock(ctx context.Context, address string, lockPeriod uint64, unlockTimestamp int64) error {
	if lockPeriod > math.MaxInt64 {
		return errLockPeriodRange
	}

	query :=
		`UPDATE vaults SET lock_period = $2, unlock_timestamp = $3, updated_at = now()
		 WHERE address = $1
		 `

	res, err := r.db.ExecContext(ctx, query, address, int64(lockPeriod), unlockTimestamp)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) CreateFeePool(ctx context.Context, fp *models.FeePool) error {
	query :=
		`INSERT INTO fee_pool (id, address, asset, initializer)
		 VALUES (1, $1, $2, $3)
		 ON CONFLICT DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, fp.Address, fp.Asset, fp.Initializer)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorAlreadyExists
	}

	return nil
}

func (r *PostgresRepository) GetFeePool(ctx context.Context) (*models.FeePool, error) {
	query :=
		`SELECT address, asset, initializer, created_at FROM fee_pool
		 WHERE id = 1
		 `

	fp := &models.FeePool{}
	err := r.db.QueryRowContext(ctx, query).Scan(&fp.Address, &fp.Asset, &fp.Initializer, &fp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return fp, nil
}
