package domain

import "github.com/shopspring/decimal"

// Wallet holds the balance for exactly one user (1:1). It is created lazily on
// the first deposit and mutated only through the ledger service commit path.
type Wallet struct {
	WalletID     string          `json:"walletID"` // Primary Key (UUID)
	UserID       string          `json:"userID"`   // FK -> users.user_id, UNIQUE
	Balance      decimal.Decimal `json:"balance"`  // Always >= 0
	CurrencyCode string          `json:"currencyCode"` // Empty string means the base currency
	AuditFields
}
