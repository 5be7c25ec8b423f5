package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/storage"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

// RateCache stores the rate list per target currency. Implemented by ratecache.Cache.
// Set must ignore writes whose version was superseded by an Invalidate.
type RateCache interface {
	Get(ctx context.Context, target currency.Code) (rates []currency.ExchangeRate, version int64, ok bool, err error)
	Set(ctx context.Context, target currency.Code, version int64, rates []currency.ExchangeRate) error
	Invalidate(ctx context.Context, target currency.Code) error
}

// ExchangeRateService reads exchange rates, through the cache when one is configured.
type ExchangeRateService struct {
	storage *storage.Storage
	cache   RateCache
	logger  *logrus.Logger
}

func NewExchangeRateService(store *storage.Storage, cache RateCache, logger *logrus.Logger) *ExchangeRateService {
	return &ExchangeRateService{storage: store, cache: cache, logger: logger}
}

// ListRates returns every stored rate converting into target. Cache failures are
// logged and fall through to storage.
func (s *ExchangeRateService) ListRates(ctx context.Context, target currency.Code) ([]currency.ExchangeRate, error) {
	var version int64
	fillCache := false
	if s.cache != nil {
		rates, cacheVersion, ok, err := s.cache.Get(ctx, target)
		switch {
		case err != nil:
			s.logger.WithError(err).WithField("target", target.String()).Warn("ExchangeRateService.ListRates.cacheGet")
		case ok:
			return rates, nil
		default:
			version = cacheVersion
			fillCache = true
		}
	}

	rows, err := s.storage.ExchangeRates.ListByTarget(ctx, target)
	if err != nil {
		return nil, err
	}

	rates := make([]currency.ExchangeRate, len(rows))
	for i, row := range rows {
		rates[i] = currency.ExchangeRate{
			Base:      row.Base,
			Target:    row.Target,
			Rate:      row.Rate,
			UpdatedAt: row.UpdatedAt,
		}
	}

	if fillCache {
		if err := s.cache.Set(ctx, target, version, rates); err != nil {
			s.logger.WithError(err).WithField("target", target.String()).Warn("ExchangeRateService.ListRates.cacheSet")
		}
	}

	return rates, nil
}

// ConvertAmount converts a single value into target using the one matching rate.
// A missing rate is returned as a *currency.RateNotFoundError.
func (s *ExchangeRateService) ConvertAmount(ctx context.Context, value currency.Money, target currency.Code) (currency.Money, error) {
	if value.Currency == target {
		return value, nil
	}

	var rates []currency.ExchangeRate
	row, err := s.storage.ExchangeRates.Find(ctx, value.Currency, target)
	switch {
	case errors.Is(err, sqlconfig.ErrNotFound):
		// an empty table makes Convert report the missing pair
	case err != nil:
		return currency.Money{}, err
	default:
		rates = append(rates, currency.ExchangeRate{Base: row.Base, Target: row.Target, Rate: row.Rate, UpdatedAt: row.UpdatedAt})
	}

	return currency.Convert(value, target, currency.NewRateTable(rates))
}

// InvalidateTarget drops cached rates into target, if a cache is configured.
func (s *ExchangeRateService) InvalidateTarget(ctx context.Context, target currency.Code) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, target)
}
