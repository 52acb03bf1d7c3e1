package dto

import (
	"time"

	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertCurrencyRequest defines the data needed to register or refresh a currency.
// Rate is a string parsed with exact decimal arithmetic in the service.
type UpsertCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3"`
	Name         string `json:"name" binding:"required"`
	ExchangeRate string `json:"exchangeRate" binding:"required,decimalgt0"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	Name          string          `json:"name"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Name:          curr.Name,
		ExchangeRate:  curr.ExchangeRate,
		LastUpdatedAt: curr.LastUpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
