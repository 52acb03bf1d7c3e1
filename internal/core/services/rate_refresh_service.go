package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/instant_transfer/internal/core/ports"
	portssvc "github.com/SscSPs/instant_transfer/internal/core/ports/services"
	"github.com/SscSPs/instant_transfer/internal/dto"
)

// systemUserID stamps registry writes made by the refresh job rather than a
// human operator.
const systemUserID = "system"

// RateRefreshService periodically pulls the full rate table from the feed and
// upserts every quoted currency into the registry.
type RateRefreshService struct {
	currencySvc  portssvc.CurrencySvcFacade
	rateFeed     ports.RateFeedProvider
	baseCurrency string
	interval     time.Duration
	logger       *slog.Logger
}

// NewRateRefreshService creates the periodic rate refresh job.
func NewRateRefreshService(currencySvc portssvc.CurrencySvcFacade, rateFeed ports.RateFeedProvider, baseCurrency string, interval time.Duration, logger *slog.Logger) *RateRefreshService {
	return &RateRefreshService{
		currencySvc:  currencySvc,
		rateFeed:     rateFeed,
		baseCurrency: baseCurrency,
		interval:     interval,
		logger:       logger,
	}
}

// Run refreshes once immediately, then on every tick until ctx is cancelled.
// A failed refresh is logged and retried on the next tick; it never takes the
// service down.
func (s *RateRefreshService) Run(ctx context.Context) {
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Rate refresh stopped")
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *RateRefreshService) refresh(ctx context.Context) {
	rates, err := s.rateFeed.FetchRates(ctx, s.baseCurrency)
	if err != nil {
		s.logger.Warn("Rate refresh failed, keeping existing registry", slog.String("error", err.Error()))
		return
	}

	updated := 0
	for code, rate := range rates {
		req := dto.UpsertCurrencyRequest{
			CurrencyCode: code,
			Name:         code, // the feed quotes codes only; keep name stable
			ExchangeRate: rate.String(),
		}
		if _, err := s.currencySvc.UpsertCurrency(ctx, req, systemUserID); err != nil {
			s.logger.Warn("Failed to upsert refreshed rate", slog.String("currency_code", code), slog.String("error", err.Error()))
			continue
		}
		updated++
	}

	s.logger.Info("Exchange rates refreshed",
		slog.String("base_currency", s.baseCurrency),
		slog.Int("updated", updated),
		slog.Int("quoted", len(rates)),
	)
}
