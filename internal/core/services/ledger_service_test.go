package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	portssvc "github.com/SscSPs/instant_transfer/internal/core/ports/services"
	"github.com/SscSPs/instant_transfer/internal/core/services"
	"github.com/SscSPs/instant_transfer/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactionsByUserID(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockLedgerRepository) CommitDeposit(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) CommitWithdrawal(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestDeposit_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	committed := &domain.Transaction{
		TransactionID:   1,
		UserID:          userID,
		TransactionType: domain.Deposit,
		Amount:          decimal.RequireFromString("10.01"),
		Status:          domain.StatusCompleted,
		RunningBalance:  decimal.RequireFromString("10.01"),
		CreatedAt:       time.Now().UTC(),
	}
	suite.mockRepo.On("CommitDeposit", ctx, mock.AnythingOfType("domain.Transaction")).Return(committed, nil).Once()

	txn, err := suite.service.Deposit(ctx, userID, dto.AmountRequest{Amount: "10.01"})

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(int64(1), txn.TransactionID)
	suite.Equal(domain.StatusCompleted, txn.Status)
	suite.True(txn.Amount.Equal(decimal.RequireFromString("10.01")))

	// The transaction handed to the repository carries the parsed amount exactly.
	passed := suite.mockRepo.Calls[0].Arguments.Get(1).(domain.Transaction)
	suite.True(passed.Amount.Equal(decimal.RequireFromString("10.01")))
	suite.Equal(domain.Deposit, passed.TransactionType)
	suite.Equal(userID, passed.UserID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeposit_RejectsBadAmounts() {
	ctx := context.Background()
	userID := uuid.NewString()

	for _, amount := range []string{"", "abc", "0", "-5", "1.2.3", "NaN"} {
		_, err := suite.service.Deposit(ctx, userID, dto.AmountRequest{Amount: amount})
		suite.Require().Error(err, "amount %q should be rejected", amount)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount, "amount %q", amount)
	}

	// No repository call for any rejected amount.
	suite.mockRepo.AssertNotCalled(suite.T(), "CommitDeposit", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestWithdraw_RejectsBadAmounts() {
	ctx := context.Background()
	userID := uuid.NewString()

	for _, amount := range []string{"zero", "0", "-0.01"} {
		_, err := suite.service.Withdraw(ctx, userID, dto.AmountRequest{Amount: amount})
		suite.ErrorIs(err, apperrors.ErrInvalidAmount, "amount %q", amount)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "CommitWithdrawal", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestWithdraw_InsufficientFunds() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("CommitWithdrawal", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	txn, err := suite.service.Withdraw(ctx, userID, dto.AmountRequest{Amount: "100"})

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestWithdraw_MissingWalletReportsInsufficientFunds() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("CommitWithdrawal", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Withdraw(ctx, userID, dto.AmountRequest{Amount: "1"})

	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

func (suite *LedgerServiceTestSuite) TestDeposit_RepoFailureIsCommitFailed() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("CommitDeposit", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil, fmt.Errorf("connection reset")).Once()

	_, err := suite.service.Deposit(ctx, userID, dto.AmountRequest{Amount: "5"})

	suite.ErrorIs(err, apperrors.ErrCommitFailed)
}

func (suite *LedgerServiceTestSuite) TestGetWalletDetails_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindWalletByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	wallet, err := suite.service.GetWalletDetails(ctx, userID)

	suite.Nil(wallet)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_PassesPagination() {
	ctx := context.Background()
	userID := uuid.NewString()
	token := "opaque-token"
	nextToken := "next-token"

	txns := []domain.Transaction{
		{TransactionID: 2, UserID: userID, TransactionType: domain.Withdraw, Amount: decimal.RequireFromString("1"), Status: domain.StatusCompleted},
		{TransactionID: 1, UserID: userID, TransactionType: domain.Deposit, Amount: decimal.RequireFromString("5"), Status: domain.StatusCompleted},
	}
	suite.mockRepo.On("ListTransactionsByUserID", ctx, userID, 2, &token).Return(txns, &nextToken, nil).Once()

	page, err := suite.service.ListTransactions(ctx, userID, dto.ListTransactionsParams{Limit: 2, NextToken: &token})

	suite.Require().NoError(err)
	suite.Len(page.Transactions, 2)
	suite.Equal(int64(2), page.Transactions[0].TransactionID)
	suite.Require().NotNil(page.NextToken)
	suite.Equal(nextToken, *page.NextToken)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

// --- Concurrency and exact-arithmetic tests against a stateful fake ---

// fakeLedgerRepo is a mutex-guarded in-memory ledger store. It mirrors the
// row-lock serialization of the real store: one commit at a time per wallet.
type fakeLedgerRepo struct {
	mu      sync.Mutex
	created bool
	balance decimal.Decimal
	nextID  int64
	txns    []domain.Transaction
}

func (f *fakeLedgerRepo) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.created {
		return nil, apperrors.ErrNotFound
	}
	return &domain.Wallet{UserID: userID, Balance: f.balance}, nil
}

func (f *fakeLedgerRepo) ListTransactionsByUserID(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Transaction, len(f.txns))
	copy(out, f.txns)
	return out, nil, nil
}

func (f *fakeLedgerRepo) commit(txn domain.Transaction, newBalance decimal.Decimal) *domain.Transaction {
	f.balance = newBalance
	f.nextID++
	txn.TransactionID = f.nextID
	txn.Status = domain.StatusCompleted
	txn.RunningBalance = newBalance
	txn.CreatedAt = time.Now().UTC()
	f.txns = append(f.txns, txn)
	return &txn
}

func (f *fakeLedgerRepo) CommitDeposit(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = true
	return f.commit(txn, f.balance.Add(txn.Amount)), nil
}

func (f *fakeLedgerRepo) CommitWithdrawal(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.created {
		return nil, apperrors.ErrNotFound
	}
	if f.balance.LessThan(txn.Amount) {
		return nil, apperrors.ErrInsufficientFunds
	}
	return f.commit(txn, f.balance.Sub(txn.Amount)), nil
}

func TestDeposit_ExactDecimalArithmetic(t *testing.T) {
	repo := &fakeLedgerRepo{}
	service := services.NewLedgerService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	_, err := service.Deposit(ctx, userID, dto.AmountRequest{Amount: "10.00"})
	if err != nil {
		t.Fatalf("first deposit: %v", err)
	}
	txn, err := service.Deposit(ctx, userID, dto.AmountRequest{Amount: "0.01"})
	if err != nil {
		t.Fatalf("second deposit: %v", err)
	}

	want := decimal.RequireFromString("10.01")
	if !txn.RunningBalance.Equal(want) {
		t.Fatalf("running balance = %s, want %s", txn.RunningBalance, want)
	}
}

func TestDeposit_ConcurrentCommitsSerialize(t *testing.T) {
	const n = 50
	amount := decimal.RequireFromString("10.01")

	repo := &fakeLedgerRepo{}
	service := services.NewLedgerService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := service.Deposit(ctx, userID, dto.AmountRequest{Amount: "10.01"}); err != nil {
				t.Errorf("deposit: %v", err)
			}
		}()
	}
	wg.Wait()

	wallet, err := service.GetWalletDetails(ctx, userID)
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	want := amount.Mul(decimal.NewFromInt(n))
	if !wallet.Balance.Equal(want) {
		t.Fatalf("final balance = %s, want %s", wallet.Balance, want)
	}

	if len(repo.txns) != n {
		t.Fatalf("transaction count = %d, want %d", len(repo.txns), n)
	}

	// IDs are unique and strictly increasing in commit order.
	seen := make(map[int64]bool, n)
	prev := int64(0)
	for _, txn := range repo.txns {
		if seen[txn.TransactionID] {
			t.Fatalf("duplicate transaction ID %d", txn.TransactionID)
		}
		seen[txn.TransactionID] = true
		if txn.TransactionID <= prev {
			t.Fatalf("transaction ID %d not increasing after %d", txn.TransactionID, prev)
		}
		prev = txn.TransactionID
	}
}

func TestWithdraw_DebitsExactly(t *testing.T) {
	repo := &fakeLedgerRepo{}
	service := services.NewLedgerService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	if _, err := service.Deposit(ctx, userID, dto.AmountRequest{Amount: "50"}); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	txn, err := service.Withdraw(ctx, userID, dto.AmountRequest{Amount: "20.25"})
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if !txn.RunningBalance.Equal(decimal.RequireFromString("29.75")) {
		t.Fatalf("running balance = %s, want 29.75", txn.RunningBalance)
	}
	if txn.Status != domain.StatusCompleted || txn.TransactionType != domain.Withdraw {
		t.Fatalf("unexpected record: type=%s status=%s", txn.TransactionType, txn.Status)
	}
	if len(repo.txns) != 2 {
		t.Fatalf("transaction count = %d, want 2", len(repo.txns))
	}
}

func TestWithdraw_RejectionLeavesNoTrace(t *testing.T) {
	repo := &fakeLedgerRepo{}
	service := services.NewLedgerService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	if _, err := service.Deposit(ctx, userID, dto.AmountRequest{Amount: "50"}); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	_, err := service.Withdraw(ctx, userID, dto.AmountRequest{Amount: "50.01"})
	if err == nil {
		t.Fatal("overdraft withdrawal should fail")
	}

	wallet, err := service.GetWalletDetails(ctx, userID)
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	if !wallet.Balance.Equal(decimal.RequireFromString("50")) {
		t.Fatalf("balance changed on rejected withdrawal: %s", wallet.Balance)
	}
	if len(repo.txns) != 1 {
		t.Fatalf("rejected withdrawal wrote a transaction row: %d rows", len(repo.txns))
	}
}
