package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-fx/internal/currency"
)

// ExchangeRate represents an exchange_rates record.
type ExchangeRate struct {
	Base      currency.Code
	Target    currency.Code
	Rate      decimal.Decimal
	UpdatedAt time.Time
}

// ExchangeRateUpsert is the input for creating or replacing the rate of a pair.
type ExchangeRateUpsert struct {
	Base   currency.Code
	Target currency.Code
	Rate   decimal.Decimal
}

// IExchangeRateTable defines the interface for exchange rate storage operations.
//
//go:generate mockery --name IExchangeRateTable --output mock_IExchangeRateTable.go
type IExchangeRateTable interface {
	Find(ctx context.Context, base, target currency.Code) (*ExchangeRate, error)
	ListByTarget(ctx context.Context, target currency.Code) ([]*ExchangeRate, error)
	Upsert(ctx context.Context, upsert *ExchangeRateUpsert) error
}

type exchangeRateRow struct {
	BaseCurrency   string          `db:"base_currency"`
	TargetCurrency string          `db:"target_currency"`
	Rate           decimal.Decimal `db:"rate"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

var exchangeRateColumns = []any{"base_currency", "target_currency", "rate", "updated_at"}

func rowToExchangeRate(row exchangeRateRow) *ExchangeRate {
	return &ExchangeRate{
		Base:      currency.Code(row.BaseCurrency),
		Target:    currency.Code(row.TargetCurrency),
		Rate:      row.Rate,
		UpdatedAt: row.UpdatedAt,
	}
}
