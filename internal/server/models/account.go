package models

// Account is a token account on the ledger.
type Account struct {
	Address string
	Asset   string
	// Authority is the only identity allowed to debit the account.
	Authority string
	Balance   uint64
}
