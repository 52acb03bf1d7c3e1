package pgsql

import (
	portsrepo "github.com/SscSPs/instant_transfer/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ledgerRepo := newPgxLedgerRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LedgerRepo:   ledgerRepo,
		CurrencyRepo: currencyRepo,
		UserRepo:     userRepo,
	}
}
