package sqlconfig

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budget-fx/internal/currency"
)

var _ IExchangeRateTable = (*ExchangeRatesTable)(nil)

// ExchangeRatesTable provides access to the exchange_rates table.
type ExchangeRatesTable struct {
	exec bob.Executor
}

func NewExchangeRatesTable(exec bob.Executor) *ExchangeRatesTable {
	return &ExchangeRatesTable{exec: exec}
}

// Find retrieves the rate for an exact base->target pair.
func (t *ExchangeRatesTable) Find(ctx context.Context, base, target currency.Code) (*ExchangeRate, error) {
	query := psql.Select(
		sm.Columns(exchangeRateColumns...),
		sm.From(exchangeRatesTableName),
		sm.Where(psql.Quote("base_currency").EQ(psql.Arg(base.String()))),
		sm.Where(psql.Quote("target_currency").EQ(psql.Arg(target.String()))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[exchangeRateRow]())
	if err != nil {
		return nil, translateNoRows(err)
	}
	return rowToExchangeRate(row), nil
}

// ListByTarget returns every rate converting into target.
func (t *ExchangeRatesTable) ListByTarget(ctx context.Context, target currency.Code) ([]*ExchangeRate, error) {
	query := psql.Select(
		sm.Columns(exchangeRateColumns...),
		sm.From(exchangeRatesTableName),
		sm.Where(psql.Quote("target_currency").EQ(psql.Arg(target.String()))),
		sm.OrderBy(psql.Quote("base_currency")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[exchangeRateRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*ExchangeRate, len(rows))
	for i, row := range rows {
		result[i] = rowToExchangeRate(row)
	}
	return result, nil
}

// Upsert inserts the pair or replaces its rate.
func (t *ExchangeRatesTable) Upsert(ctx context.Context, upsert *ExchangeRateUpsert) error {
	query := psql.Insert(
		im.Into(exchangeRatesTableName, "base_currency", "target_currency", "rate", "updated_at"),
		im.Values(
			psql.Arg(upsert.Base.String()),
			psql.Arg(upsert.Target.String()),
			psql.Arg(upsert.Rate),
			psql.Arg(time.Now().UTC()),
		),
		im.OnConflict("base_currency", "target_currency").DoUpdate(
			im.SetExcluded("rate", "updated_at"),
		),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}
