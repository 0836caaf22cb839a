package vaults

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const (
	insertVaultQ = `(?s)^INSERT\s+INTO\s+vaults\s*\(address,\s*owner,\s*asset,\s*pool_address\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*ON\s+CONFLICT\s+DO\s+NOTHING\s*$`
	selectVaultQ = `(?s)^SELECT\s+address,\s*owner,\s*asset,\s*pool_address,\s*lock_period,\s*unlock_timestamp,\s*created_at,\s*updated_at\s+FROM\s+vaults\s+WHERE\s+address\s*=\s*\$1$`
	lockVaultQ   = `(?s)^SELECT\s+address,.*FROM\s+vaults\s+WHERE\s+address\s*=\s*\$1\s+FOR\s+UPDATE$`
	updateLockQ  = `(?s)^UPDATE\s+vaults\s+SET\s+lock_period\s*=\s*\$2,\s*unlock_timestamp\s*=\s*\$3,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+address\s*=\s*\$1\s*$`
	insertFeeQ   = `(?s)^INSERT\s+INTO\s+fee_pool\s*\(id,\s*address,\s*asset,\s*initializer\)\s*VALUES\s*\(1,\s*\$1,\s*\$2,\s*\$3\)\s*ON\s+CONFLICT\s+DO\s+NOTHING\s*$`
	selectFeeQ   = `(?s)^SELECT\s+address,\s*asset,\s*initializer,\s*created_at\s+FROM\s+fee_pool\s+WHERE\s+id\s*=\s*1\s*$`
)

var vaultCols = []string{"address", "owner", "asset", "pool_address", "lock_period", "unlock_timestamp", "created_at", "updated_at"}

func TestCreate(t *testing.T) {
	v := &models.Vault{Address: "rec", Owner: "alice", Asset: "USDC", PoolAddress: "pool"}

	t.Run("inserted", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(insertVaultQ).WithArgs("rec", "alice", "USDC", "pool").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Create(context.Background(), v))
	})

	t.Run("conflict", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(insertVaultQ).WithArgs("rec", "alice", "USDC", "pool").WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.Create(context.Background(), v), common.ErrorAlreadyExists)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(insertVaultQ).WillReturnError(errors.New("db down"))
		assert.ErrorContains(t, repo.Create(context.Background(), v), "db error: db down")
	})
}

func TestGet(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(selectVaultQ).WithArgs("rec").WillReturnRows(
			sqlmock.NewRows(vaultCols).AddRow("rec", "alice", "USDC", "pool", int64(3600), int64(3600), ts, ts))

		got, err := repo.Get(context.Background(), "rec")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Owner)
		assert.Equal(t, uint64(3600), got.LockPeriod)
		assert.Equal(t, int64(3600), got.UnlockTimestamp)
		assert.Equal(t, ts, got.CreatedAt)
	})

	t.Run("for update", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(lockVaultQ).WithArgs("rec").WillReturnRows(
			sqlmock.NewRows(vaultCols).AddRow("rec", "alice", "USDC", "pool", int64(0), int64(0), ts, ts))

		got, err := repo.GetForUpdate(context.Background(), "rec")
		require.NoError(t, err)
		assert.Equal(t, "pool", got.PoolAddress)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(selectVaultQ).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "ghost")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestUpdateLock(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(updateLockQ).WithArgs("rec", int64(3600), int64(3600)).WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.UpdateLock(context.Background(), "rec", 3600, 3600))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(updateLockQ).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.UpdateLock(context.Background(), "ghost", 1, 1), common.ErrorNotFound)
	})

	t.Run("lock period does not fit the column", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		assert.ErrorIs(t, repo.UpdateLock(context.Background(), "rec", math.MaxInt64+1, 1), errLockPeriodRange)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFeePool(t *testing.T) {
	fp := &models.FeePool{Address: "fee", Asset: "USDC", Initializer: "admin"}

	t.Run("create", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(insertFeeQ).WithArgs("fee", "USDC", "admin").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.CreateFeePool(context.Background(), fp))
	})

	t.Run("create twice", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(insertFeeQ).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.CreateFeePool(context.Background(), fp), common.ErrorAlreadyExists)
	})

	t.Run("get", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		ts := time.Now().UTC()
		mock.ExpectQuery(selectFeeQ).WillReturnRows(
			sqlmock.NewRows([]string{"address", "asset", "initializer", "created_at"}).AddRow("fee", "USDC", "admin", ts))

		got, err := repo.GetFeePool(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "fee", got.Address)
		assert.Equal(t, "USDC", got.Asset)
	})

	t.Run("get missing", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(selectFeeQ).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetFeePool(context.Background())
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}
