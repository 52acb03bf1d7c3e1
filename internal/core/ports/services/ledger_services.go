package services

import (
	"context"

	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/SscSPs/instant_transfer/internal/dto"
)

// LedgerReaderSvc defines read operations against a user's wallet and history.
type LedgerReaderSvc interface {
	// GetWalletDetails returns the wallet for the given user.
	// Returns apperrors.ErrNotFound if the user has never deposited.
	GetWalletDetails(ctx context.Context, userID string) (*domain.Wallet, error)
	// ListTransactions returns the user's transactions, most recent first.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// LedgerWriterSvc defines the balance-changing operations.
type LedgerWriterSvc interface {
	// Deposit credits the user's wallet, creating it on first use.
	Deposit(ctx context.Context, userID string, req dto.AmountRequest) (*domain.Transaction, error)
	// Withdraw debits the user's wallet if funds suffice.
	Withdraw(ctx context.Context, userID string, req dto.AmountRequest) (*domain.Transaction, error)
}

// LedgerSvcFacade combines reader and writer ledger operations.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
