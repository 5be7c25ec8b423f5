package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-fx/internal/config"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

type Storage struct {
	DB            *sql.DB
	bobDB         bob.DB
	Transactions  sqlconfig.ITransactionTable
	ExchangeRates sqlconfig.IExchangeRateTable
	Users         sqlconfig.IUserTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		return nil, err
	}
	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened postgres handle.
func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:            db,
		bobDB:         bobDB,
		Transactions:  sqlconfig.NewTransactionsTable(bobDB),
		ExchangeRates: sqlconfig.NewExchangeRatesTable(bobDB),
		Users:         sqlconfig.NewUsersTable(bobDB),
	}
}

// Write begins a database transaction. The caller must Commit or Rollback the writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
