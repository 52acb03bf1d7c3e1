package mapping

import (
	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/SscSPs/instant_transfer/internal/models"
)

// ToDomainWallet converts a model Wallet to a domain Wallet.
// A NULL currency column maps to the empty string (base currency).
func ToDomainWallet(m models.Wallet) domain.Wallet {
	code := ""
	if m.CurrencyCode != nil {
		code = *m.CurrencyCode
	}
	return domain.Wallet{
		WalletID:     m.WalletID,
		UserID:       m.UserID,
		Balance:      m.Balance,
		CurrencyCode: code,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
