package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-fx/internal/currency"
)

// User represents a user record.
type User struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	BaseCurrency currency.Code
	CreatedAt    time.Time
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Email        string
	DisplayName  string
	BaseCurrency currency.Code
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable --output mock_IUserTable.go
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
	UpdateBaseCurrency(ctx context.Context, id uuid.UUID, code currency.Code) error
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	DisplayName  string    `db:"display_name"`
	BaseCurrency string    `db:"base_currency"`
	CreatedAt    time.Time `db:"created_at"`
}

var userColumns = []any{"id", "email", "display_name", "base_currency", "created_at"}

func rowToUser(row userRow) *User {
	return &User{
		ID:           row.ID,
		Email:        row.Email,
		DisplayName:  row.DisplayName,
		BaseCurrency: currency.Code(row.BaseCurrency),
		CreatedAt:    row.CreatedAt,
	}
}
