package models

import "time"

type EventKind string

const (
	EventVaultInitialized   EventKind = "vault_initialized"
	EventFeePoolInitialized EventKind = "fee_pool_initialized"
	EventDeposit            EventKind = "deposit"
	EventExtend             EventKind = "extend"
	EventWithdraw           EventKind = "withdraw"
)

// Event is the durable envelope written in the same transaction as the state
// change it describes. Payload is the JSON encoding of one of the *Event
// structs below.
type Event struct {
	ID        string
	Kind      EventKind
	User      string
	Payload   []byte
	CreatedAt time.Time
}

type VaultInitializedEvent struct {
	User  string `json:"user"`
	Vault string `json:"vault"`
	Asset string `json:"asset"`
}

type FeePoolInitializedEvent struct {
	Initializer string `json:"initializer"`
	FeePool     string `json:"fee_pool"`
	Asset       string `json:"asset"`
}

type DepositEvent struct {
	User            string `json:"user"`
	Vault           string `json:"vault"`
	Amount          uint64 `json:"amount"`
	LockPeriod      uint64 `json:"lock_period"`
	UnlockTimestamp int64  `json:"unlock_timestamp"`
	Timestamp       int64  `json:"timestamp"`
}

type ExtendEvent struct {
	User            string `json:"user"`
	Vault           string `json:"vault"`
	ExtendPeriod    uint64 `json:"extend_period"`
	UnlockTimestamp int64  `json:"unlock_timestamp"`
	Timestamp       int64  `json:"timestamp"`
}

type WithdrawEvent struct {
	User           string `json:"user"`
	Vault          string `json:"vault"`
	Amount         uint64 `json:"amount"`
	Fee            uint64 `json:"fee"`
	AmountAfterFee uint64 `json:"amount_after_fee"`
	Timestamp      int64  `json:"timestamp"`
}
