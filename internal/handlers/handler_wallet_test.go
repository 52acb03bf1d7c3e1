package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	portssvc "github.com/SscSPs/instant_transfer/internal/core/ports/services"
	"github.com/SscSPs/instant_transfer/internal/dto"
	"github.com/SscSPs/instant_transfer/internal/handlers"
	"github.com/SscSPs/instant_transfer/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Deposit(ctx context.Context, userID string, req dto.AmountRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) Withdraw(ctx context.Context, userID string, req dto.AmountRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) GetWalletDetails(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type WalletHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

func (suite *WalletHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "instant-transfer-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterWalletRoutes(v1, suite.mockLedgerService)
}

func (suite *WalletHandlerTestSuite) doRequest(method, url, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *WalletHandlerTestSuite) TestDeposit_Success() {
	userID := uuid.NewString()

	committed := &domain.Transaction{
		TransactionID:   7,
		UserID:          userID,
		TransactionType: domain.Deposit,
		Amount:          decimal.RequireFromString("25.50"),
		CurrencyCode:    "USD",
		Status:          domain.StatusCompleted,
		RunningBalance:  decimal.RequireFromString("25.50"),
		CreatedAt:       time.Now().UTC(),
	}
	suite.mockLedgerService.On("Deposit",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		dto.AmountRequest{Amount: "25.50"},
	).Return(committed, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/wallet/deposit", `{"amount": "25.50"}`, suite.generateTestToken(userID))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.TransactionID)
	suite.True(resp.RunningBalance.Equal(decimal.RequireFromString("25.50")))
	suite.Equal("completed", resp.Status)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *WalletHandlerTestSuite) TestDeposit_MalformedAmountRejectedAtBinding() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	for _, body := range []string{
		`{"amount": "abc"}`,
		`{"amount": "0"}`,
		`{"amount": "-1"}`,
		`{"amount": 25.5}`,
		`{}`,
	} {
		w := suite.doRequest(http.MethodPost, "/api/v1/wallet/deposit", body, token)
		suite.Equal(http.StatusBadRequest, w.Code, "body %s", body)
	}

	suite.mockLedgerService.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestDeposit_RequiresAuth() {
	w := suite.doRequest(http.MethodPost, "/api/v1/wallet/deposit", `{"amount": "10"}`, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestWithdraw_InsufficientFunds() {
	userID := uuid.NewString()

	suite.mockLedgerService.On("Withdraw",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		dto.AmountRequest{Amount: "999"},
	).Return(nil, apperrors.ErrInsufficientFunds).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/wallet/withdraw", `{"amount": "999"}`, suite.generateTestToken(userID))

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *WalletHandlerTestSuite) TestGetWallet_Success() {
	userID := uuid.NewString()

	wallet := &domain.Wallet{
		UserID:       userID,
		Balance:      decimal.RequireFromString("100.25"),
		CurrencyCode: "USD",
	}
	suite.mockLedgerService.On("GetWalletDetails", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(wallet, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/wallet", "", suite.generateTestToken(userID))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.WalletDetailsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("100.25")))
	suite.Equal("USD", resp.CurrencyCode)
}

func (suite *WalletHandlerTestSuite) TestGetWallet_NotFound() {
	userID := uuid.NewString()

	suite.mockLedgerService.On("GetWalletDetails", mock.AnythingOfType("*context.valueCtx"), userID).
		Return(nil, apperrors.NewNotFoundError("wallet not found")).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/wallet", "", suite.generateTestToken(userID))

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestWalletHandler(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}
