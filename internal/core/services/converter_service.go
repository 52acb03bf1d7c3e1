package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/SscSPs/instant_transfer/internal/core/ports"
	portsrepo "github.com/SscSPs/instant_transfer/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/instant_transfer/internal/core/ports/services"
	"github.com/SscSPs/instant_transfer/internal/middleware"
	"github.com/shopspring/decimal"
)

// converterService converts amounts between currencies. It reads the registry
// and the external feed only; wallet state is out of its reach entirely.
type converterService struct {
	currencyRepo portsrepo.CurrencyReader
	rateFeed     ports.RateFeedProvider
	baseCurrency string
}

// NewConverterService creates a new converter service.
func NewConverterService(currencyRepo portsrepo.CurrencyReader, rateFeed ports.RateFeedProvider, baseCurrency string) portssvc.ConverterSvcFacade {
	return &converterService{
		currencyRepo: currencyRepo,
		rateFeed:     rateFeed,
		baseCurrency: strings.ToUpper(baseCurrency),
	}
}

// Ensure converterService implements the portssvc.ConverterSvcFacade interface
var _ portssvc.ConverterSvcFacade = (*converterService)(nil)

// registryRate returns the registry rate for code relative to the base
// currency. The base itself is always rate 1.
func (s *converterService) registryRate(ctx context.Context, code string) (decimal.Decimal, error) {
	if code == s.baseCurrency {
		return decimal.NewFromInt(1), nil
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return decimal.Zero, err
	}
	return currency.ExchangeRate, nil
}

// Convert converts amount from one currency to another. Identical codes use
// rate 1 exactly, skipping both registry and feed. Otherwise the registry is
// preferred; pairs with an unregistered side fall back to the live feed.
func (s *converterService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*domain.ConversionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("conversion amount must be positive: %w", apperrors.ErrInvalidAmount)
	}

	from := strings.ToUpper(fromCode)
	to := strings.ToUpper(toCode)

	rate, err := s.resolveRate(ctx, from, to)
	if err != nil {
		logger.Warn("Conversion failed",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return &domain.ConversionResult{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Amount:           amount,
		ConvertedAmount:  amount.Mul(rate),
		Rate:             rate,
	}, nil
}

func (s *converterService) resolveRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	fromRate, errFrom := s.registryRate(ctx, from)
	toRate, errTo := s.registryRate(ctx, to)
	if errFrom == nil && errTo == nil {
		if fromRate.IsZero() {
			return decimal.Zero, fmt.Errorf("registry rate for %s is zero: %w", from, apperrors.ErrUnknownCurrency)
		}
		return toRate.Div(fromRate), nil
	}
	// A substrate failure is not "currency unknown"; only fall back to the
	// feed when the registry genuinely has no entry.
	if errFrom != nil && !errors.Is(errFrom, apperrors.ErrNotFound) {
		return decimal.Zero, fmt.Errorf("failed to read currency registry: %w", errFrom)
	}
	if errTo != nil && !errors.Is(errTo, apperrors.ErrNotFound) {
		return decimal.Zero, fmt.Errorf("failed to read currency registry: %w", errTo)
	}

	return s.rateFeed.FetchRate(ctx, from, to)
}
