package services

import (
	"github.com/SscSPs/instant_transfer/internal/core/ports"
	portsrepo "github.com/SscSPs/instant_transfer/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/instant_transfer/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, rateFeed ports.RateFeedProvider, baseCurrency string) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:    NewLedgerService(repos.LedgerRepo),
		Currency:  NewCurrencyService(repos.CurrencyRepo),
		Converter: NewConverterService(repos.CurrencyRepo, rateFeed, baseCurrency),
		User:      NewUserService(repos.UserRepo),
	}
}
