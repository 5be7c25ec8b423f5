package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

// TxFinisher ends a database transaction.
type TxFinisher interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to a single database transaction.
type Writer struct {
	tx            TxFinisher
	Transactions  sqlconfig.ITransactionTable
	ExchangeRates sqlconfig.IExchangeRateTable
	Users         sqlconfig.IUserTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:            tx,
		Transactions:  sqlconfig.NewTransactionsTable(tx),
		ExchangeRates: sqlconfig.NewExchangeRatesTable(tx),
		Users:         sqlconfig.NewUsersTable(tx),
	}
}

// NewWriterWith assembles a writer from its parts, for callers that supply their own tables.
func NewWriterWith(
	tx TxFinisher,
	transactions sqlconfig.ITransactionTable,
	exchangeRates sqlconfig.IExchangeRateTable,
	users sqlconfig.IUserTable,
) *Writer {
	return &Writer{
		tx:            tx,
		Transactions:  transactions,
		ExchangeRates: exchangeRates,
		Users:         users,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
