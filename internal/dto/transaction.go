package dto

import (
	"time"

	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a single ledger record.
type TransactionResponse struct {
	TransactionID   int64           `json:"transactionID"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode,omitempty"`
	Status          string          `json:"status"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
	Date            time.Time       `json:"date"`
}

// ListTransactionsParams holds pagination parameters for the transaction list.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is a page of transactions, most recent first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		TransactionType: string(t.TransactionType),
		Amount:          t.Amount,
		CurrencyCode:    t.CurrencyCode,
		Status:          string(t.Status),
		RunningBalance:  t.RunningBalance,
		Date:            t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain Transactions to DTOs.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(ts))
	for i := range ts {
		res[i] = ToTransactionResponse(&ts[i])
	}
	return res
}
