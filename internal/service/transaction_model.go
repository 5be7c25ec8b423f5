package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType int8

const (
	TransactionTypeIncome TransactionType = iota
	TransactionTypeExpense
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeIncome:
		return "Income"
	case TransactionTypeExpense:
		return "Expense"
	default:
		return "Unknown"
	}
}

// Transaction represents a transaction in the service layer.
//
// Original is the value as stored. Value is what the caller should display: the
// original converted into the user's base currency when a rate was available.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Description     *string
	Original        currency.Money
	Value           currency.Money
	Type            TransactionType
	GroupID         *uuid.UUID
	TransactionDate time.Time
	CreatedAt       time.Time
}

// Converted reports whether Value differs in currency from the stored value.
func (t Transaction) Converted() bool {
	return t.Value.Currency != t.Original.Currency
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func transactionValue(t *Transaction) *currency.Money {
	return &t.Value
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	value := currency.NewMoney(row.Amount, row.Currency)
	return Transaction{
		ID:              row.ID,
		UserID:          row.UserID,
		Name:            row.Name,
		Description:     row.Description,
		Original:        value,
		Value:           value,
		Type:            TransactionType(row.Type),
		GroupID:         row.GroupID,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}
