package actions

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/storage"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

type CreateUser struct {
	Email        string
	DisplayName  string
	BaseCurrency currency.Code

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
}

func (c *CreateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if !c.BaseCurrency.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, currency.ErrUnsupportedCurrency)
	}

	id, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email:        c.Email,
		DisplayName:  c.DisplayName,
		BaseCurrency: c.BaseCurrency,
	})
	if errors.Is(err, sqlconfig.ErrDuplicate) {
		return ErrUserExists
	}
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

// SetBaseCurrency changes the currency a user's listings are normalized into.
type SetBaseCurrency struct {
	UserID   uuid.UUID
	Currency currency.Code
}

func (s *SetBaseCurrency) Perform(ctx context.Context, writer *storage.Writer) error {
	if !s.Currency.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, currency.ErrUnsupportedCurrency)
	}

	err := writer.Users.UpdateBaseCurrency(ctx, s.UserID, s.Currency)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
