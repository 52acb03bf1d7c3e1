package services

import (
	"context"

	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConverterSvcFacade converts amounts between currencies. Read-only:
// a conversion never touches any wallet balance.
type ConverterSvcFacade interface {
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*domain.ConversionResult, error)
}
