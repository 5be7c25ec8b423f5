package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-fx/internal/currency"
)

type TransactionType int8

const (
	TransactionTypeIncome TransactionType = iota
	TransactionTypeExpense
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Description     *string
	Amount          decimal.Decimal
	Currency        currency.Code
	Type            TransactionType
	GroupID         *uuid.UUID
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	Name            string
	Description     *string
	Amount          decimal.Decimal
	Currency        currency.Code
	Type            TransactionType
	GroupID         *uuid.UUID
	TransactionDate time.Time // defaults to now if zero
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	UserID          *uuid.UUID
	Type            *TransactionType
	GroupID         *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}

type transactionRow struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Name            string          `db:"name"`
	Description     sql.NullString  `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	Currency        string          `db:"currency"`
	TransactionType int16           `db:"transaction_type"`
	GroupID         uuid.NullUUID   `db:"group_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

var transactionColumns = []any{
	"id", "user_id", "name", "description", "amount", "currency",
	"transaction_type", "group_id", "transaction_date", "created_at",
}

func rowToTransaction(row transactionRow) *Transaction {
	tx := &Transaction{
		ID:              row.ID,
		UserID:          row.UserID,
		Name:            row.Name,
		Amount:          row.Amount,
		Currency:        currency.Code(row.Currency),
		Type:            TransactionType(row.TransactionType),
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
	if row.Description.Valid {
		description := row.Description.String
		tx.Description = &description
	}
	if row.GroupID.Valid {
		groupID := row.GroupID.UUID
		tx.GroupID = &groupID
	}
	return tx
}
