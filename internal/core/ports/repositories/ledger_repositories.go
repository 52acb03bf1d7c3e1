package repositories

import (
	"context"

	"github.com/SscSPs/instant_transfer/internal/core/domain"
)

// LedgerReader defines read operations against the wallet + transaction store.
type LedgerReader interface {
	// FindWalletByUserID retrieves the wallet owned by userID.
	// Returns apperrors.ErrNotFound when no wallet exists yet.
	FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error)

	// ListTransactionsByUserID retrieves a page of transactions for a user,
	// most recent first, along with a token for the next page (nil when done).
	ListTransactionsByUserID(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// LedgerWriter defines the atomic commit operations of the ledger store.
// Each call is a single all-or-nothing unit: the wallet balance update and the
// transaction append either both become visible or neither does. Per-wallet
// serialization is the store's responsibility (row lock); callers must not
// hold the critical section across external calls.
type LedgerWriter interface {
	// CommitDeposit creates the wallet if absent, applies balance += amount
	// and appends the completed transaction record. The returned transaction
	// carries the store-assigned monotonic ID, timestamp and running balance.
	CommitDeposit(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// CommitWithdrawal re-verifies funds under the wallet row lock, applies
	// balance -= amount and appends the completed transaction record.
	// Returns apperrors.ErrNotFound when no wallet exists and
	// apperrors.ErrInsufficientFunds when the locked balance is too small;
	// in both cases nothing is written.
	CommitWithdrawal(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
