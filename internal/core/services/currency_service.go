package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	portsrepo "github.com/SscSPs/instant_transfer/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/instant_transfer/internal/core/ports/services"
	"github.com/SscSPs/instant_transfer/internal/dto"
	"github.com/SscSPs/instant_transfer/internal/middleware"
	"github.com/shopspring/decimal"
)

// currencyService maintains the currency registry.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

// Ensure currencyService implements the portssvc.CurrencySvcFacade interface
var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// UpsertCurrency registers a currency or refreshes its rate against the base.
func (s *currencyService) UpsertCurrency(ctx context.Context, req dto.UpsertCurrencyRequest, updaterUserID string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rate, err := decimal.NewFromString(req.ExchangeRate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("exchange rate %q is not a number", req.ExchangeRate))
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("exchange rate must be positive")
	}

	now := time.Now().UTC()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Name:         req.Name,
		ExchangeRate: rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.currencyRepo.UpsertCurrency(ctx, currency); err != nil {
		logger.Error("Failed to upsert currency", slog.String("currency_code", req.CurrencyCode), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to upsert currency: %w", err)
	}

	logger.Info("Currency upserted", slog.String("currency_code", req.CurrencyCode), slog.String("rate", rate.String()))
	return &currency, nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all registered currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
