package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	portsrepo "github.com/SscSPs/instant_transfer/internal/core/ports/repositories"
	"github.com/SscSPs/instant_transfer/internal/models"
	"github.com/SscSPs/instant_transfer/internal/utils/mapping"
	"github.com/SscSPs/instant_transfer/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for wallet and transaction data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// lockWallet selects the wallet row FOR UPDATE, serializing every commit
// against the same wallet for the remainder of the transaction.
func (r *PgxLedgerRepository) lockWallet(ctx context.Context, tx pgx.Tx, userID string) (*models.Wallet, error) {
	query := `
		SELECT wallet_id, user_id, balance, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM wallets
		WHERE user_id = $1
		FOR UPDATE;
	`
	var w models.Wallet
	err := tx.QueryRow(ctx, query, userID).Scan(
		&w.WalletID,
		&w.UserID,
		&w.Balance,
		&w.CurrencyCode,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet for user %s: %w", userID, err)
	}
	return &w, nil
}

// applyCommit updates the locked wallet's balance and appends the transaction
// record in the same database transaction. Returns the assigned transaction ID.
func (r *PgxLedgerRepository) applyCommit(ctx context.Context, tx pgx.Tx, wallet *models.Wallet, txn models.Transaction, newBalance decimal.Decimal, now time.Time) (int64, error) {
	updateQuery := `
		UPDATE wallets
		SET balance = $1, last_updated_at = $2, last_updated_by = $3
		WHERE wallet_id = $4;
	`
	if _, err := tx.Exec(ctx, updateQuery, newBalance, now, txn.CreatedBy, wallet.WalletID); err != nil {
		return 0, fmt.Errorf("failed to update wallet balance: %w", err)
	}

	insertQuery := `
		INSERT INTO transactions (user_id, transaction_type, amount, currency_code, status, running_balance, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING transaction_id;
	`
	var transactionID int64
	err := tx.QueryRow(ctx, insertQuery,
		txn.UserID,
		txn.TransactionType,
		txn.Amount,
		wallet.CurrencyCode, // the wallet's currency is authoritative
		string(domain.StatusCompleted),
		newBalance,
		now,
		txn.CreatedBy,
	).Scan(&transactionID)
	if err != nil {
		return 0, fmt.Errorf("failed to append transaction: %w", err)
	}
	return transactionID, nil
}

// CommitDeposit credits the user's wallet, creating it on first use, and
// appends the matching transaction record. Single all-or-nothing unit.
func (r *PgxLedgerRepository) CommitDeposit(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	modelTxn := mapping.ToModelTransaction(txn)
	now := time.Now().UTC()

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }() // Rollback is no-op after commit

	// Lazy wallet creation. DO NOTHING keeps an existing wallet untouched;
	// the row lock below then reads whichever row won.
	ensureQuery := `
		INSERT INTO wallets (wallet_id, user_id, balance, currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, 0, $3, $4, $5, $4, $5)
		ON CONFLICT (user_id) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, ensureQuery, uuid.NewString(), modelTxn.UserID, modelTxn.CurrencyCode, now, modelTxn.CreatedBy); err != nil {
		return nil, fmt.Errorf("failed to ensure wallet for user %s: %w", modelTxn.UserID, err)
	}

	wallet, err := r.lockWallet(ctx, tx, modelTxn.UserID)
	if err != nil {
		return nil, err
	}

	newBalance := wallet.Balance.Add(modelTxn.Amount)
	transactionID, err := r.applyCommit(ctx, tx, wallet, modelTxn, newBalance, now)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return committedTransaction(txn, transactionID, wallet.CurrencyCode, newBalance, now), nil
}

// CommitWithdrawal debits the user's wallet after re-verifying funds under the
// row lock. Nothing is written when the wallet is missing or funds are short.
func (r *PgxLedgerRepository) CommitWithdrawal(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	modelTxn := mapping.ToModelTransaction(txn)
	now := time.Now().UTC()

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	wallet, err := r.lockWallet(ctx, tx, modelTxn.UserID)
	if err != nil {
		return nil, err
	}

	// The locked balance is authoritative; any pre-check outside the lock is
	// advisory only.
	if wallet.Balance.LessThan(modelTxn.Amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	newBalance := wallet.Balance.Sub(modelTxn.Amount)
	transactionID, err := r.applyCommit(ctx, tx, wallet, modelTxn, newBalance, now)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return committedTransaction(txn, transactionID, wallet.CurrencyCode, newBalance, now), nil
}

func committedTransaction(txn domain.Transaction, transactionID int64, currencyCode *string, newBalance decimal.Decimal, now time.Time) *domain.Transaction {
	txn.TransactionID = transactionID
	txn.Status = domain.StatusCompleted
	txn.RunningBalance = newBalance
	txn.CreatedAt = now
	txn.CurrencyCode = ""
	if currencyCode != nil {
		txn.CurrencyCode = *currencyCode
	}
	return &txn
}

// FindWalletByUserID retrieves the wallet owned by userID.
func (r *PgxLedgerRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `
		SELECT wallet_id, user_id, balance, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM wallets
		WHERE user_id = $1;
	`
	var modelWallet models.Wallet
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&modelWallet.WalletID,
		&modelWallet.UserID,
		&modelWallet.Balance,
		&modelWallet.CurrencyCode,
		&modelWallet.CreatedAt,
		&modelWallet.CreatedBy,
		&modelWallet.LastUpdatedAt,
		&modelWallet.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet for user %s: %w", userID, err)
	}

	domainWallet := mapping.ToDomainWallet(modelWallet)
	return &domainWallet, nil
}

// ListTransactionsByUserID retrieves a page of the user's transactions, most
// recent first, keyed on (created_at, transaction_id) so records sharing a
// timestamp still order deterministically.
func (r *PgxLedgerRepository) ListTransactionsByUserID(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	fetchLimit := limit + 1 // fetch one extra to know if there is a next page

	query := `
		SELECT transaction_id, user_id, transaction_type, amount, currency_code, status, running_balance, created_at, created_by
		FROM transactions
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		tokenCreatedAt, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		query += ` AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, tokenCreatedAt, tokenID)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var t models.Transaction
		err := row.Scan(
			&t.TransactionID,
			&t.UserID,
			&t.TransactionType,
			&t.Amount,
			&t.CurrencyCode,
			&t.Status,
			&t.RunningBalance,
			&t.CreatedAt,
			&t.CreatedBy,
		)
		return t, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	var newNextToken *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		newNextToken = &token
	}

	return mapping.ToDomainTransactionSlice(modelTxns), newNextToken, nil
}
