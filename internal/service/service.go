package service

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-fx/internal/storage"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Service holds all business logic services.
type Service struct {
	Transaction  *TransactionService
	ExchangeRate *ExchangeRateService
	User         *UserService
}

// NewService creates a new Service with the given storage. cache may be nil.
func NewService(store *storage.Storage, cache RateCache, logger *logrus.Logger) *Service {
	rates := NewExchangeRateService(store, cache, logger)
	return &Service{
		Transaction:  NewTransactionService(store, rates, logger),
		ExchangeRate: rates,
		User:         NewUserService(store),
	}
}
