package domain

import "github.com/shopspring/decimal"

// Currency is a registry entry. ExchangeRate is expressed relative to the
// configured base currency and is always positive. Writes come only from the
// periodic refresh job or the admin upsert endpoint.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string          `json:"name"`         // e.g., "US Dollar"
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Units of this currency per one base unit
	AuditFields
}

// ConversionResult is the outcome of a currency conversion. It records the
// rate actually applied, not whatever the registry holds afterwards.
type ConversionResult struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Amount           decimal.Decimal `json:"amount"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	Rate             decimal.Decimal `json:"rate"`
}
