package mapping

import (
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/SscSPs/instant_transfer/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var code *string
	if d.CurrencyCode != "" {
		c := d.CurrencyCode
		code = &c
	}
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		TransactionType: string(d.TransactionType),
		Amount:          d.Amount,
		CurrencyCode:    code,
		Status:          string(d.Status),
		RunningBalance:  d.RunningBalance,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	code := ""
	if m.CurrencyCode != nil {
		code = *m.CurrencyCode
	}
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		CurrencyCode:    code,
		Status:          domain.TransactionStatus(m.Status),
		RunningBalance:  m.RunningBalance,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
