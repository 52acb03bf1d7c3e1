package dto

import (
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest carries the query parameters of a conversion call.
type ConvertRequest struct {
	Amount string `form:"amount" binding:"required,decimalgt0"`
	From   string `form:"from" binding:"required,len=3"`
	To     string `form:"to" binding:"required,len=3"`
}

// ConversionResponse defines the data returned for a conversion.
type ConversionResponse struct {
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
}

// ToConversionResponse converts a domain.ConversionResult to a ConversionResponse DTO.
func ToConversionResponse(r *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		FromCurrency:    r.FromCurrencyCode,
		ToCurrency:      r.ToCurrencyCode,
		Amount:          r.Amount,
		ConvertedAmount: r.ConvertedAmount,
		ExchangeRate:    r.Rate,
	}
}
