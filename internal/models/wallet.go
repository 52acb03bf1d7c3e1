package models

import "github.com/shopspring/decimal"

// Wallet is the database row representation of a wallet.
// CurrencyCode is nullable in the schema; nil means the base currency.
type Wallet struct {
	WalletID     string
	UserID       string
	Balance      decimal.Decimal
	CurrencyCode *string
	AuditFields
}
