package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/eventlog"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/vaults"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can
// use the same repository type on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Vaults(db dbx.DBTX) vaults.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	Events(db dbx.DBTX) eventlog.Repository
}
