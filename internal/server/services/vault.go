// Package services holds the vault's business operations. Every mutating
// operation runs in one database transaction: the record update, each ledger
// leg and the event row commit together or not at all.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/timevault/internal/address"
	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/dbx"
	"github.com/dmitrijs2005/timevault/internal/logging"
	"github.com/dmitrijs2005/timevault/internal/server/auth"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/dmitrijs2005/timevault/internal/server/events"
	"github.com/dmitrijs2005/timevault/internal/server/ledger"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/eventlog"
	"github.com/dmitrijs2005/timevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/timevault/internal/timex"
	"github.com/google/uuid"
)

const (
	defaultEventLimit = 20
	maxEventLimit     = 100
)

// VaultView is a record together with its pool balance and lock state at Now.
type VaultView struct {
	Vault   *models.Vault
	Wallet  string
	Balance uint64
	Locked  bool
	Now     int64
}

type FeePoolView struct {
	FeePool *models.FeePool
	Balance uint64
}

type WithdrawResult struct {
	Amount         uint64
	Fee            uint64
	AmountAfterFee uint64
	Locked         bool
	Timestamp      int64
}

type VaultService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	authorizer  auth.Authorizer
	clock       timex.Clock
	publisher   events.Publisher
	logger      logging.Logger
	maxLock     uint64
	maxExtend   uint64

	newLedger func(db dbx.DBTX) ledger.Ledger
}

type Option func(*VaultService)

func WithClock(c timex.Clock) Option { return func(s *VaultService) { s.clock = c } }

func WithPublisher(p events.Publisher) Option { return func(s *VaultService) { s.publisher = p } }

func WithLogger(l logging.Logger) Option { return func(s *VaultService) { s.logger = l } }

func WithAuthorizer(a auth.Authorizer) Option { return func(s *VaultService) { s.authorizer = a } }

func NewVaultService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, opts ...Option) *VaultService {
	s := &VaultService{
		db:          db,
		repomanager: m,
		authorizer:  auth.ContextAuthorizer{},
		clock:       timex.SystemClock{},
		publisher:   events.Multi{},
		logger:      logging.Nop{},
		maxLock:     cfg.MaxLockSeconds(),
		maxExtend:   cfg.MaxExtendSeconds(),
	}
	s.newLedger = func(db dbx.DBTX) ledger.Ledger {
		return ledger.New(s.repomanager.Accounts(db))
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// InitializeFeePool creates the shared fee account for asset. It can succeed
// exactly once per deployment.
func (s *VaultService) InitializeFeePool(ctx context.Context, initializer, asset string) (*models.FeePool, error) {
	if err := s.authorizer.Authorize(ctx, initializer); err != nil {
		return nil, err
	}
	if asset == "" {
		return nil, common.ErrInvalidAsset
	}

	now := s.clock.Now().UTC().Truncate(time.Second)
	fp := &models.FeePool{
		Address:     address.FeePool().String(),
		Asset:       asset,
		Initializer: initializer,
		CreatedAt:   now,
	}

	var ev *models.Event
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		vaults := s.repomanager.Vaults(tx)

		if _, err := vaults.GetFeePool(ctx); err == nil {
			return common.ErrAlreadyProvisioned
		} else if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		err := s.newLedger(tx).CreateAccount(ctx, fp.Address, asset, address.VaultAuthority().String())
		if errors.Is(err, ledger.ErrAccountExists) {
			return common.ErrAlreadyProvisioned
		}
		if err != nil {
			return err
		}

		if err := vaults.CreateFeePool(ctx, fp); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrAlreadyProvisioned
			}
			return err
		}

		ev, err = s.record(ctx, s.repomanager.Events(tx), models.EventFeePoolInitialized, initializer, now,
			models.FeePoolInitializedEvent{Initializer: initializer, FeePool: fp.Address, Asset: asset})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "fee pool initialized", "initializer", initializer, "fee_pool", fp.Address, "asset", asset)
	s.publish(ctx, ev)
	return fp, nil
}

// Provision creates the user's record and principal pool. A user's funding
// wallet for asset is opened as well when the ledger does not have it yet.
func (s *VaultService) Provision(ctx context.Context, user, asset string) (*models.Vault, error) {
	if err := s.authorizer.Authorize(ctx, user); err != nil {
		return nil, err
	}
	if asset == "" {
		return nil, common.ErrInvalidAsset
	}

	now := s.clock.Now().UTC().Truncate(time.Second)
	v := &models.Vault{
		Address:     address.UserVault(user).String(),
		Owner:       user,
		Asset:       asset,
		PoolAddress: address.PrincipalPool(user).String(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var ev *models.Event
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		vaults := s.repomanager.Vaults(tx)
		l := s.newLedger(tx)

		if _, err := vaults.Get(ctx, v.Address); err == nil {
			return common.ErrAlreadyProvisioned
		} else if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		err := l.CreateAccount(ctx, v.PoolAddress, asset, address.VaultAuthority().String())
		if errors.Is(err, ledger.ErrAccountExists) {
			return common.ErrAlreadyProvisioned
		}
		if err != nil {
			return err
		}

		err = l.CreateAccount(ctx, address.Wallet(user, asset).String(), asset, user)
		if err != nil && !errors.Is(err, ledger.ErrAccountExists) {
			return err
		}

		if err := vaults.Create(ctx, v); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrAlreadyProvisioned
			}
			return err
		}

		ev, err = s.record(ctx, s.repomanager.Events(tx), models.EventVaultInitialized, user, now,
			models.VaultInitializedEvent{User: user, Vault: v.PoolAddress, Asset: asset})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "vault provisioned", "user", user, "vault", v.PoolAddress, "asset", asset)
	s.publish(ctx, ev)
	return v, nil
}

// Deposit moves amount from the user's wallet into the principal pool and
// sets the unlock time to now+lockPeriod, replacing any earlier lock.
func (s *VaultService) Deposit(ctx context.Context, user string, lockPeriod, amount uint64) (*models.Vault, error) {
	if err := s.authorizer.Authorize(ctx, user); err != nil {
		return nil, err
	}
	if lockPeriod == 0 || lockPeriod > s.maxLock {
		return nil, common.ErrInvalidLockPeriod
	}
	if amount == 0 {
		return nil, common.ErrInvalidAmount
	}

	now := s.clock.Now().UTC().Truncate(time.Second)

	var (
		v  *models.Vault
		ev *models.Event
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		vaults := s.repomanager.Vaults(tx)

		var err error
		v, err = s.lockVault(ctx, vaults, user)
		if err != nil {
			return err
		}

		unlock, err := AddPeriod(now.Unix(), lockPeriod)
		if err != nil {
			return err
		}

		wallet := address.Wallet(user, v.Asset).String()
		if err := s.newLedger(tx).Transfer(ctx, wallet, v.PoolAddress, user, amount); err != nil {
			return err
		}

		if err := vaults.UpdateLock(ctx, v.Address, lockPeriod, unlock); err != nil {
			return err
		}
		v.LockPeriod, v.UnlockTimestamp, v.UpdatedAt = lockPeriod, unlock, now

		ev, err = s.record(ctx, s.repomanager.Events(tx), models.EventDeposit, user, now, models.DepositEvent{
			User:            user,
			Vault:           v.PoolAddress,
			Amount:          amount,
			LockPeriod:      lockPeriod,
			UnlockTimestamp: unlock,
			Timestamp:       now.Unix(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "deposit committed", "user", user, "amount", amount, "lock_period", lockPeriod, "unlock_timestamp", v.UnlockTimestamp)
	s.publish(ctx, ev)
	return v, nil
}

// Extend pushes the unlock time out by extendPeriod. No funds move.
func (s *VaultService) Extend(ctx context.Context, user string, extendPeriod uint64) (*models.Vault, error) {
	if err := s.authorizer.Authorize(ctx, user); err != nil {
		return nil, err
	}
	if extendPeriod == 0 || extendPeriod > s.maxExtend {
		return nil, common.ErrInvalidExtendPeriod
	}

	now := s.clock.Now().UTC().Truncate(time.Second)

	var (
		v  *models.Vault
		ev *models.Event
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		vaults := s.repomanager.Vaults(tx)

		var err error
		v, err = s.lockVault(ctx, vaults, user)
		if err != nil {
			return err
		}

		unlock, err := AddPeriod(v.UnlockTimestamp, extendPeriod)
		if err != nil {
			return err
		}

		if err := vaults.UpdateLock(ctx, v.Address, v.LockPeriod, unlock); err != nil {
			return err
		}
		v.UnlockTimestamp, v.UpdatedAt = unlock, now

		ev, err = s.record(ctx, s.repomanager.Events(tx), models.EventExtend, user, now, models.ExtendEvent{
			User:            user,
			Vault:           v.PoolAddress,
			ExtendPeriod:    extendPeriod,
			UnlockTimestamp: unlock,
			Timestamp:       now.Unix(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "lock extended", "user", user, "extend_period", extendPeriod, "unlock_timestamp", v.UnlockTimestamp)
	s.publish(ctx, ev)
	return v, nil
}

// Withdraw pays amount out of the principal pool: the tiered fee to the fee
// pool and the rest to the user's wallet, both signed by the vault authority.
func (s *VaultService) Withdraw(ctx context.Context, user string, amount uint64) (*WithdrawResult, error) {
	if err := s.authorizer.Authorize(ctx, user); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, common.ErrInvalidAmount
	}

	now := s.clock.Now().UTC().Truncate(time.Second)
	res := &WithdrawResult{Amount: amount, Timestamp: now.Unix()}

	var ev *models.Event
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		vaults := s.repomanager.Vaults(tx)
		l := s.newLedger(tx)

		v, err := s.lockVault(ctx, vaults, user)
		if err != nil {
			return err
		}

		fp, err := vaults.GetFeePool(ctx)
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("%w: fee pool", common.ErrNotProvisioned)
		}
		if err != nil {
			return err
		}

		balance, err := l.Balance(ctx, v.PoolAddress)
		if err != nil {
			return err
		}
		if balance < amount {
			return common.ErrInsufficientVaultBalance
		}

		res.Locked = v.Locked(now.Unix())
		res.Fee, res.AmountAfterFee, err = ComputeFee(amount, res.Locked)
		if err != nil {
			return err
		}

		authority := address.VaultAuthority().String()
		if err := l.Transfer(ctx, v.PoolAddress, fp.Address, authority, res.Fee); err != nil {
			return err
		}
		wallet := address.Wallet(user, v.Asset).String()
		if err := l.Transfer(ctx, v.PoolAddress, wallet, authority, res.AmountAfterFee); err != nil {
			return err
		}

		ev, err = s.record(ctx, s.repomanager.Events(tx), models.EventWithdraw, user, now, models.WithdrawEvent{
			User:           user,
			Vault:          v.PoolAddress,
			Amount:         amount,
			Fee:            res.Fee,
			AmountAfterFee: res.AmountAfterFee,
			Timestamp:      now.Unix(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "withdraw committed", "user", user, "amount", amount, "fee", res.Fee, "amount_after_fee", res.AmountAfterFee, "locked", res.Locked)
	s.publish(ctx, ev)
	return res, nil
}

// GetVault reports the caller's record, pool balance and lock state.
func (s *VaultService) GetVault(ctx context.Context, user string) (*VaultView, error) {
	if err := s.authorizer.Authorize(ctx, user); err != nil {
		return nil, err
	}

	v, err := s.repomanager.Vaults(s.db).Get(ctx, address.UserVault(user).String())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotProvisioned
		}
		return nil, err
	}

	balance, err := s.newLedger(s.db).Balance(ctx, v.PoolAddress)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().Unix()
	return &VaultView{
		Vault:   v,
		Wallet:  address.Wallet(user, v.Asset).String(),
		Balance: balance,
		Locked:  v.Locked(now),
		Now:     now,
	}, nil
}

// GetFeePool is public: it exposes only the pool's identity and total.
func (s *VaultService) GetFeePool(ctx context.Context) (*FeePoolView, error) {
	fp, err := s.repomanager.Vaults(s.db).GetFeePool(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotProvisioned
		}
		return nil, err
	}

	balance, err := s.newLedger(s.db).Balance(ctx, fp.Address)
	if err != nil {
		return nil, err
	}

	return &FeePoolView{FeePool: fp, Balance: balance}, nil
}

// ListEvents returns the caller's most recent events, newest first.
func (s *VaultService) ListEvents(ctx context.Context, user string, limit int) ([]*models.Event, error) {
	if err := s.authorizer.Authorize(ctx, user); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}
	return s.repomanager.Events(s.db).ListByUser(ctx, user, limit)
}

type vaultLocker interface {
	GetForUpdate(ctx context.Context, address string) (*models.Vault, error)
}

func (s *VaultService) lockVault(ctx context.Context, vaults vaultLocker, user string) (*models.Vault, error) {
	v, err := vaults.GetForUpdate(ctx, address.UserVault(user).String())
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrNotProvisioned
	}
	return v, err
}

func (s *VaultService) record(ctx context.Context, repo eventlog.Repository, kind models.EventKind, user string, at time.Time, payload any) (*models.Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", kind, err)
	}

	ev := &models.Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		User:      user,
		Payload:   b,
		CreatedAt: at,
	}
	if err := repo.Insert(ctx, ev); err != nil {
		return nil, fmt.Errorf("store %s event: %w", kind, err)
	}
	return ev, nil
}

func (s *VaultService) publish(ctx context.Context, ev *models.Event) {
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn(ctx, "publish event failed", "id", ev.ID, "kind", string(ev.Kind), "error", err)
	}
}
