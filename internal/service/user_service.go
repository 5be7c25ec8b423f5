package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/storage"
)

// User represents a user in the service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	BaseCurrency currency.Code
	CreatedAt    time.Time
}

// UserService handles user lookups.
type UserService struct {
	storage *storage.Storage
}

func NewUserService(store *storage.Storage) *UserService {
	return &UserService{storage: store}
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, userLookupError(err)
	}
	return &User{
		ID:           row.ID,
		Email:        row.Email,
		DisplayName:  row.DisplayName,
		BaseCurrency: row.BaseCurrency,
		CreatedAt:    row.CreatedAt,
	}, nil
}
