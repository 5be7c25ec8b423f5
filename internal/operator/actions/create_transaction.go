package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/storage"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	UserID          uuid.UUID
	Name            string
	Description     *string
	Amount          decimal.Decimal
	Currency        currency.Code
	Type            sqlconfig.TransactionType
	GroupID         *uuid.UUID
	TransactionDate time.Time

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (t *CreateTransaction) validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !t.Currency.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, currency.ErrUnsupportedCurrency)
	}
	if t.Type != sqlconfig.TransactionTypeIncome && t.Type != sqlconfig.TransactionTypeExpense {
		return fmt.Errorf("%w: unknown transaction type %d", ErrInvalidInput, t.Type)
	}
	return nil
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := t.validate(); err != nil {
		return err
	}

	_, err := writer.Users.FindByID(ctx, t.UserID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	storageCreate := &sqlconfig.TransactionCreate{
		UserID:          t.UserID,
		Name:            t.Name,
		Description:     t.Description,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Type:            t.Type,
		GroupID:         t.GroupID,
		TransactionDate: t.TransactionDate,
	}
	id, err := writer.Transactions.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
