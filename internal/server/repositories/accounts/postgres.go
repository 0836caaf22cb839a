// Package accounts provides the PostgreSQL-backed storage for ledger token
// accounts: user wallets, principal pools and the fee pool.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a zero-balance account. An existing address yields
// common.ErrorAlreadyExists and leaves the stored row untouched.
func (r *PostgresRepository) Create(ctx context.Context, acc *models.Account) error {
	query :=
		`INSERT INTO token_accounts (address, asset, authority)
		 VALUES ($1, $2, $3)
		 ON CONFLICT DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, acc.Address, acc.Asset, acc.Authority)
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

func (r *PostgresRepository) GetForUpdate(ctx context.Context, address string) (*models.Account, error) {
	query :=
		`SELECT address, asset, authority, balance FROM token_accounts
		 WHERE address = $1
		 FOR UPDATE
		 `

	acc := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, address).Scan(&acc.Address, &acc.Asset, &acc.Authority, &acc.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return acc, nil
}

// AddBalance applies a signed delta. The table's CHECK constraint rejects a
// result below zero; callers are expected to have checked the balance first.
func (r *PostgresRepository) AddBalance(ctx context.Context, address string, delta int64) error {
	query :=
		`UPDATE token_accounts SET balance = balance + $2, updated_at = now()
		 WHERE address = $1
		 `

	res, err := r.db.ExecContext(ctx, query, address, delta)
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
