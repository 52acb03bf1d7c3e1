package dto

import (
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountRequest carries the amount for a deposit or withdrawal.
// The amount travels as a string and is parsed with exact decimal arithmetic
// in the service layer. Binding a float here would silently truncate, which
// is exactly the bug this design forbids.
type AmountRequest struct {
	Amount string `json:"amount" binding:"required,decimalgt0"`
}

// WalletDetailsResponse defines the data returned for a wallet.
type WalletDetailsResponse struct {
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currencyCode"`
}

// ToWalletDetailsResponse converts a domain Wallet to a WalletDetailsResponse DTO.
func ToWalletDetailsResponse(w *domain.Wallet) WalletDetailsResponse {
	return WalletDetailsResponse{
		Balance:      w.Balance,
		CurrencyCode: w.CurrencyCode,
	}
}
