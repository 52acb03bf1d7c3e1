package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction moved money into or out of a wallet.
type TransactionType string

const (
	Deposit  TransactionType = "deposit"
	Withdraw TransactionType = "withdraw"
)

// TransactionStatus is the lifecycle state of a transaction record.
// The engine commits synchronously: every persisted record is "completed".
// "pending" and "failed" remain declared for schema compatibility; a rejected
// or rolled-back operation writes no record at all.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is an immutable ledger record. The ID is assigned by the ledger
// store at commit time and is strictly increasing, never reused.
type Transaction struct {
	TransactionID   int64             `json:"transactionID"`
	UserID          string            `json:"userID"`          // FK -> users.user_id (Not Null)
	TransactionType TransactionType   `json:"transactionType"` // deposit or withdraw
	Amount          decimal.Decimal   `json:"amount"`          // Positive value; exact decimal
	CurrencyCode    string            `json:"currencyCode"`    // Empty string means the base currency
	Status          TransactionStatus `json:"status"`
	RunningBalance  decimal.Decimal   `json:"runningBalance"` // Wallet balance after this transaction
	CreatedAt       time.Time         `json:"createdAt"`      // Server clock at commit
	CreatedBy       string            `json:"createdBy"`
}
