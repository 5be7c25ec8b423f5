package ratecache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-fx/internal/currency"
)

const namespace = "exchange_rates"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache keeps the rate list for each target currency in redis.
type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

type cachedRate struct {
	Base      currency.Code   `json:"base"`
	Target    currency.Code   `json:"target"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func New(addr, password string, ttl time.Duration) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return NewWithClient(client, ttl)
}

func NewWithClient(client redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(target currency.Code) string {
	return namespace + ":" + target.String()
}

// versionKey holds a counter bumped by every Invalidate. Set only writes when
// the counter still matches what Get returned.
func versionKey(target currency.Code) string {
	return key(target) + ":version"
}

// Get returns the cached rates into target and the current version. ok is false
// on a cache miss; version is valid either way and should be passed to Set.
func (c *Cache) Get(ctx context.Context, target currency.Code) (rates []currency.ExchangeRate, version int64, ok bool, err error) {
	pipe := c.client.Pipeline()
	dataCmd := pipe.Get(ctx, key(target))
	versionCmd := pipe.Get(ctx, versionKey(target))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, err
	}

	version, err = versionCmd.Int64()
	if errors.Is(err, redis.Nil) {
		version = 0
	} else if err != nil {
		return nil, 0, false, err
	}

	raw, err := dataCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, false, nil
	}
	if err != nil {
		return nil, 0, false, err
	}

	var cached []cachedRate
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, 0, false, err
	}

	rates = make([]currency.ExchangeRate, len(cached))
	for i, r := range cached {
		rates[i] = currency.ExchangeRate{Base: r.Base, Target: r.Target, Rate: r.Rate, UpdatedAt: r.UpdatedAt}
	}
	return rates, version, true, nil
}

// Set stores rates for target unless an Invalidate happened since the Get that
// returned version. A skipped write is not an error.
func (c *Cache) Set(ctx context.Context, target currency.Code, version int64, rates []currency.ExchangeRate) error {
	cached := make([]cachedRate, len(rates))
	for i, r := range rates {
		cached[i] = cachedRate{Base: r.Base, Target: r.Target, Rate: r.Rate, UpdatedAt: r.UpdatedAt}
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey(target)).Int64()
		if errors.Is(err, redis.Nil) {
			current = 0
		} else if err != nil {
			return err
		}
		if current != version {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(target), raw, c.ttl)
			return nil
		})
		return err
	}, versionKey(target))
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate drops the cached list for target and bumps its version.
func (c *Cache) Invalidate(ctx context.Context, target currency.Code) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(target))
		pipe.Del(ctx, key(target))
		return nil
	})
	return err
}

func (c *Cache) Close() error {
	return c.client.Close()
}
