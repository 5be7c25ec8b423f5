package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/logging"
	"github.com/carson-networks/budget-fx/internal/storage"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
	rates   *ExchangeRateService
	logger  *logrus.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, rates *ExchangeRateService, logger *logrus.Logger) *TransactionService {
	return &TransactionService{storage: store, rates: rates, logger: logger}
}

// ListTransactions returns a page of the user's transactions using cursor-based
// pagination, normalized into the user's base currency.
//
// Normalization is lenient: a transaction whose currency has no rate into the base
// currency is returned in its original currency and logged.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, userLookupError(err)
	}

	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &sqlconfig.TransactionFilter{
		UserID:          &userID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	rates, err := s.rates.ListRates(ctx, user.BaseCurrency)
	if err != nil {
		return nil, nil, err
	}

	normalized, skipped, err := currency.NormalizeLenient(ctx, convertedTransactions, user.BaseCurrency, currency.NewRateTable(rates), transactionValue)
	if err != nil {
		return nil, nil, err
	}

	for _, skip := range skipped {
		s.logger.WithFields(logrus.Fields{
			"userID":        userID.String(),
			"transactionID": normalized[skip.Index].ID.String(),
			"base":          skip.Base.String(),
			"target":        skip.Target.String(),
		}).Warn("TransactionService.ListTransactions.rateNotFound")
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("unconvertedCount", len(skipped))
	}

	return normalized, nextCursor, nil
}

// GetTransaction returns one of the user's transactions converted into their base
// currency. A missing rate is an error here, matching currency.ErrRateNotFound.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, transactionID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	if row.UserID != userID {
		return nil, ErrTransactionNotFound
	}

	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, userLookupError(err)
	}

	transaction := transactionFromStorage(row)
	transaction.Value, err = s.rates.ConvertAmount(ctx, transaction.Original, user.BaseCurrency)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func userLookupError(err error) error {
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
