package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/storage"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

// RateInvalidator drops cached rates into a target currency.
type RateInvalidator interface {
	InvalidateTarget(ctx context.Context, target currency.Code) error
}

// UpsertExchangeRate stores the rate for one directional pair, replacing any
// previous rate for the same pair.
type UpsertExchangeRate struct {
	Base   currency.Code
	Target currency.Code
	Rate   decimal.Decimal

	// Invalidator may be nil when no rate cache is configured.
	Invalidator RateInvalidator
}

func (u *UpsertExchangeRate) validate() error {
	if !u.Base.Valid() || !u.Target.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, currency.ErrUnsupportedCurrency)
	}
	if u.Base == u.Target {
		return fmt.Errorf("%w: base and target currency must differ", ErrInvalidInput)
	}
	if !u.Rate.IsPositive() {
		return fmt.Errorf("%w: rate must be positive", ErrInvalidInput)
	}
	return nil
}

func (u *UpsertExchangeRate) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := u.validate(); err != nil {
		return err
	}

	return writer.ExchangeRates.Upsert(ctx, &sqlconfig.ExchangeRateUpsert{
		Base:   u.Base,
		Target: u.Target,
		Rate:   u.Rate,
	})
}

func (u *UpsertExchangeRate) AfterCommit(ctx context.Context) error {
	if u.Invalidator == nil {
		return nil
	}
	return u.Invalidator.InvalidateTarget(ctx, u.Target)
}
