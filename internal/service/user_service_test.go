package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

func TestGetUser(t *testing.T) {
	store, tables := newTestStorage(t)
	svc := NewUserService(store)
	id := uuid.Must(uuid.NewV4())
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tables.users.EXPECT().FindByID(mock.Anything, id).Return(&sqlconfig.User{
		ID:           id,
		Email:        "ann@example.com",
		DisplayName:  "Ann",
		BaseCurrency: currency.HUF,
		CreatedAt:    created,
	}, nil)

	user, err := svc.GetUser(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, &User{
		ID:           id,
		Email:        "ann@example.com",
		DisplayName:  "Ann",
		BaseCurrency: currency.HUF,
		CreatedAt:    created,
	}, user)
}

func TestGetUser_NotFound(t *testing.T) {
	store, tables := newTestStorage(t)
	svc := NewUserService(store)
	id := uuid.Must(uuid.NewV4())

	tables.users.EXPECT().FindByID(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	user, err := svc.GetUser(context.Background(), id)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUser_StorageError(t *testing.T) {
	store, tables := newTestStorage(t)
	svc := NewUserService(store)
	id := uuid.Must(uuid.NewV4())

	tables.users.EXPECT().FindByID(mock.Anything, id).Return(nil, errors.New("closed"))

	_, err := svc.GetUser(context.Background(), id)

	assert.EqualError(t, err, "closed")
}
