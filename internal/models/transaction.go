package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row representation of a ledger record.
// TransactionID is a bigserial: assigned by the database, strictly increasing.
type Transaction struct {
	TransactionID   int64
	UserID          string
	TransactionType string
	Amount          decimal.Decimal
	CurrencyCode    *string
	Status          string
	RunningBalance  decimal.Decimal
	CreatedAt       time.Time
	CreatedBy       string
}
