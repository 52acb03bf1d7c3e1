package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	portssvc "github.com/SscSPs/instant_transfer/internal/core/ports/services"
	"github.com/SscSPs/instant_transfer/internal/core/services"
	"github.com/SscSPs/instant_transfer/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestUpsertCurrency_Success() {
	ctx := context.Background()
	req := dto.UpsertCurrencyRequest{CurrencyCode: "EUR", Name: "Euro", ExchangeRate: "0.90"}

	suite.mockRepo.On("UpsertCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()

	currency, err := suite.service.UpsertCurrency(ctx, req, "admin-user")

	suite.Require().NoError(err)
	suite.Equal("EUR", currency.CurrencyCode)
	suite.True(currency.ExchangeRate.Equal(decimal.RequireFromString("0.90")))
	suite.Equal("admin-user", currency.LastUpdatedBy)
	suite.WithinDuration(time.Now().UTC(), currency.LastUpdatedAt, 5*time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpsertCurrency_RejectsBadRates() {
	ctx := context.Background()

	for _, rate := range []string{"abc", "0", "-1.5"} {
		req := dto.UpsertCurrencyRequest{CurrencyCode: "EUR", Name: "Euro", ExchangeRate: rate}
		_, err := suite.service.UpsertCurrency(ctx, req, "admin-user")
		suite.ErrorIs(err, apperrors.ErrValidation, "rate %q", rate)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyRegistry() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

// --- Rate refresh job ---

func TestRateRefresh_UpsertsQuotedCurrencies(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mockRepo := new(MockCurrencyRepository)
	mockFeed := new(MockRateFeed)

	mockFeed.On("FetchRates", mock.Anything, "USD").Return(map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.90"),
		"JPY": decimal.RequireFromString("150"),
	}, nil).Once()
	mockRepo.On("UpsertCurrency", mock.Anything, mock.AnythingOfType("domain.Currency")).Return(nil).Twice()

	refresher := services.NewRateRefreshService(services.NewCurrencyService(mockRepo), mockFeed, "USD", time.Hour, logger)

	runCtx, cancel := context.WithCancel(ctx)
	cancel() // one immediate refresh, then the loop exits
	refresher.Run(runCtx)

	mockFeed.AssertExpectations(t)
	mockRepo.AssertExpectations(t)

	// Registry writes are stamped with the system user, never a human operator.
	for _, call := range mockRepo.Calls {
		currency := call.Arguments.Get(1).(domain.Currency)
		if currency.LastUpdatedBy != "system" {
			t.Fatalf("refresh write stamped with %q, want system", currency.LastUpdatedBy)
		}
	}
}

func TestRateRefresh_FeedFailureKeepsRegistry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mockRepo := new(MockCurrencyRepository)
	mockFeed := new(MockRateFeed)

	mockFeed.On("FetchRates", mock.Anything, "USD").Return(nil, apperrors.ErrRateFeedUnavailable).Once()

	refresher := services.NewRateRefreshService(services.NewCurrencyService(mockRepo), mockFeed, "USD", time.Hour, logger)

	runCtx, cancel := context.WithCancel(context.Background())
	cancel()
	refresher.Run(runCtx)

	mockRepo.AssertNotCalled(t, "UpsertCurrency", mock.Anything, mock.Anything)
}
