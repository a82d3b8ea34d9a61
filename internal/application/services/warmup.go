package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"btc-price-client/internal/domain/entities"
	"btc-price-client/internal/infrastructure/logging"
)

const warmupConcurrency = 4

// WarmUp primes price and market entries for each currency through the
// regular fetch path. It only fails when ctx ends before every fetch returned.
func (s *PriceDataService) WarmUp(ctx context.Context, currencies []string) error {
	if len(currencies) == 0 {
		return nil
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(warmupConcurrency)

	seen := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		// mismas claves que produce la capa HTTP
		currency := entities.NormalizeCurrency(c)
		if _, dup := seen[currency]; dup {
			continue
		}
		seen[currency] = struct{}{}

		g.Go(func() error {
			s.FetchBitcoinPrice(gctx, currency)
			return gctx.Err()
		})
		g.Go(func() error {
			s.FetchBitcoinMarketData(gctx, currency)
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		logging.WarnWithError(ctx, "Cache warm-up interrupted", err, logging.Fields{
			"currencies": currencies,
		})
		return err
	}

	logging.Info(ctx, "Cache warm-up completed", logging.Fields{
		"currencies":          len(seen),
		logging.FieldDuration: float64(time.Since(start).Milliseconds()),
	})
	return nil
}
