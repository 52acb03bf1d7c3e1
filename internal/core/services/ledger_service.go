package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	portsrepo "github.com/SscSPs/instant_transfer/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/instant_transfer/internal/core/ports/services"
	"github.com/SscSPs/instant_transfer/internal/dto"
	"github.com/SscSPs/instant_transfer/internal/middleware"
	"github.com/shopspring/decimal"
)

// ledgerService implements the deposit/withdraw engine on top of the ledger
// repository. All amount validation happens here, before any row lock is
// taken; the repository re-verifies funds under the lock.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// parseAmount parses the raw request amount with exact decimal arithmetic.
// Rejects non-numeric, zero and negative values.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a number: %w", raw, apperrors.ErrInvalidAmount)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("amount must be positive: %w", apperrors.ErrInvalidAmount)
	}
	return amount, nil
}

// Deposit credits the user's wallet, creating it on first use.
func (s *ledgerService) Deposit(ctx context.Context, userID string, req dto.AmountRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := parseAmount(req.Amount)
	if err != nil {
		logger.Warn("Deposit rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	txn := domain.Transaction{
		UserID:          userID,
		TransactionType: domain.Deposit,
		Amount:          amount,
		CreatedBy:       userID,
	}

	committed, err := s.ledgerRepo.CommitDeposit(ctx, txn)
	if err != nil {
		logger.Error("Failed to commit deposit", slog.String("error", err.Error()))
		return nil, fmt.Errorf("deposit was rolled back: %w", apperrors.ErrCommitFailed)
	}

	logger.Info("Deposit committed",
		slog.Int64("transaction_id", committed.TransactionID),
		slog.String("amount", committed.Amount.String()),
	)
	return committed, nil
}

// Withdraw debits the user's wallet if funds suffice. A rejected withdrawal
// writes no ledger record at all.
func (s *ledgerService) Withdraw(ctx context.Context, userID string, req dto.AmountRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := parseAmount(req.Amount)
	if err != nil {
		logger.Warn("Withdrawal rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	txn := domain.Transaction{
		UserID:          userID,
		TransactionType: domain.Withdraw,
		Amount:          amount,
		CreatedBy:       userID,
	}

	committed, err := s.ledgerRepo.CommitWithdrawal(ctx, txn)
	if err != nil {
		// A user with no wallet has a zero balance; report it the same way as
		// an overdraft rather than leaking wallet existence.
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Warn("Withdrawal rejected, insufficient funds", slog.String("amount", amount.String()))
			return nil, apperrors.ErrInsufficientFunds
		}
		logger.Error("Failed to commit withdrawal", slog.String("error", err.Error()))
		return nil, fmt.Errorf("withdrawal was rolled back: %w", apperrors.ErrCommitFailed)
	}

	logger.Info("Withdrawal committed",
		slog.Int64("transaction_id", committed.TransactionID),
		slog.String("amount", committed.Amount.String()),
	)
	return committed, nil
}

// GetWalletDetails returns the wallet for the given user.
func (s *ledgerService) GetWalletDetails(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.ledgerRepo.FindWalletByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("wallet not found")
		}
		return nil, fmt.Errorf("failed to get wallet details: %w", err)
	}
	return wallet, nil
}

// ListTransactions returns a page of the user's transactions, most recent first.
func (s *ledgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, nextToken, err := s.ledgerRepo.ListTransactionsByUserID(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
