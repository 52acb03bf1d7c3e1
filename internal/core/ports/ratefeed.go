package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateFeedProvider is the outbound port to the external exchange-rate feed.
// Implementations must honor ctx deadlines; the feed is never called while a
// wallet critical section is held.
type RateFeedProvider interface {
	// FetchRate returns the live rate for converting fromCode into toCode.
	// Returns apperrors.ErrUnknownCurrency for codes the feed does not serve
	// and apperrors.ErrRateFeedUnavailable for transport failures.
	FetchRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)

	// FetchRates returns the full rate table for the given base currency,
	// keyed by currency code.
	FetchRates(ctx context.Context, baseCode string) (map[string]decimal.Decimal, error)
}
