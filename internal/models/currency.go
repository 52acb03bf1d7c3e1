package models

import "github.com/shopspring/decimal"

// Currency is the database row representation of a registry entry.
type Currency struct {
	CurrencyCode string
	Name         string
	ExchangeRate decimal.Decimal
	AuditFields
}
