package services

import (
	"context"

	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/SscSPs/instant_transfer/internal/dto"
)

// CurrencyReaderSvc defines read operations on the currency registry.
type CurrencyReaderSvc interface {
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations on the currency registry.
type CurrencyWriterSvc interface {
	// UpsertCurrency registers a currency or refreshes its rate against the base.
	UpsertCurrency(ctx context.Context, req dto.UpsertCurrencyRequest, updaterUserID string) (*domain.Currency, error)
}

// CurrencySvcFacade combines reader and writer currency operations.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
