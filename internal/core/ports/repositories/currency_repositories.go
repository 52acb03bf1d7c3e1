package repositories

import (
	"context"

	"github.com/SscSPs/instant_transfer/internal/core/domain"
)

// CurrencyReader defines read operations for currency registry data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all registered currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency registry data
type CurrencyWriter interface {
	// UpsertCurrency inserts the currency or updates its name and rate.
	UpsertCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
