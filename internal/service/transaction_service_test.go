package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/logging"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

func newTestService(t *testing.T) (*TransactionService, *testTables) {
	t.Helper()
	store, tables := newTestStorage(t)
	logger := newTestLogger(tables.logs)
	rates := NewExchangeRateService(store, nil, logger)
	return NewTransactionService(store, rates, logger), tables
}

func testUser(id uuid.UUID, base currency.Code) *sqlconfig.User {
	return &sqlconfig.User{
		ID:           id,
		Email:        "user@example.com",
		DisplayName:  "User",
		BaseCurrency: base,
	}
}

func makeStorageRows(userID uuid.UUID, n int, createdAt time.Time) []*sqlconfig.Transaction {
	rows := make([]*sqlconfig.Transaction, n)
	for i := range rows {
		rows[i] = &sqlconfig.Transaction{
			ID:              uuid.Must(uuid.NewV4()),
			UserID:          userID,
			Name:            "Item",
			Amount:          decimal.RequireFromString("5.00"),
			Currency:        currency.USD,
			Type:            sqlconfig.TransactionTypeExpense,
			TransactionDate: createdAt,
			CreatedAt:       createdAt,
		}
	}
	return rows
}

// -- ListTransactions tests --

func TestListTransactions_UserNotFound(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())

	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(nil, sqlconfig.ErrNotFound)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())

	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(testUser(userID, currency.USD), nil)
	tables.transactions.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{}, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_NormalizesIntoBaseCurrency(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	rows := makeStorageRows(userID, 2, now)
	rows[0].Amount = decimal.RequireFromString("100")
	rows[0].Currency = currency.EUR
	rows[1].Amount = decimal.RequireFromString("50")

	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(testUser(userID, currency.USD), nil)
	tables.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.UserID != nil && *f.UserID == userID &&
			f.Limit == defaultLimit && f.Offset == 0 && f.MaxCreationTime == nil
	})).Return(rows, nil)
	tables.exchangeRates.EXPECT().ListByTarget(mock.Anything, currency.USD).Return([]*sqlconfig.ExchangeRate{
		{Base: currency.EUR, Target: currency.USD, Rate: decimal.RequireFromString("1.10")},
	}, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil)

	require.NoError(t, err)
	assert.Nil(t, nextCursor)
	require.Len(t, txs, 2)

	assert.Equal(t, rows[0].ID, txs[0].ID)
	assert.Equal(t, "110.00", txs[0].Value.Amount.StringFixed(2))
	assert.Equal(t, currency.USD, txs[0].Value.Currency)
	assert.Equal(t, currency.EUR, txs[0].Original.Currency)
	assert.True(t, txs[0].Converted())

	assert.Equal(t, "50", txs[1].Value.Amount.String())
	assert.Equal(t, currency.USD, txs[1].Value.Currency)
	assert.False(t, txs[1].Converted())
	assert.Empty(t, tables.logs.String())
}

func TestListTransactions_MissingRateIsSkippedAndLogged(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	rows := makeStorageRows(userID, 2, now)
	rows[0].Amount = decimal.RequireFromString("100")
	rows[0].Currency = currency.EUR

	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(testUser(userID, currency.USD), nil)
	tables.transactions.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)
	tables.exchangeRates.EXPECT().ListByTarget(mock.Anything, currency.USD).Return([]*sqlconfig.ExchangeRate{}, nil)

	logData := logging.NewLogData(newTestLogger(tables.logs))
	ctx := logging.WithLogData(context.Background(), logData)

	txs, _, err := svc.ListTransactions(ctx, userID, nil)

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "100", txs[0].Value.Amount.String())
	assert.Equal(t, currency.EUR, txs[0].Value.Currency)
	assert.False(t, txs[0].Converted())
	assert.Equal(t, currency.USD, txs[1].Value.Currency)

	logged := tables.logs.String()
	assert.Contains(t, logged, "TransactionService.ListTransactions.rateNotFound")
	assert.Contains(t, logged, rows[0].ID.String())
	assert.Contains(t, logged, `"base":"EUR"`)
}

func TestListTransactions_HasNextPage(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(userID, defaultLimit+1, now)

	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(testUser(userID, currency.USD), nil)
	tables.transactions.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)
	tables.exchangeRates.EXPECT().ListByTarget(mock.Anything, currency.USD).Return(nil, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit, "truncated to default limit")

	assert.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
	assert.Equal(t, now, nextCursor.MaxCreationTime, "derived from first row")
}

func TestListTransactions_WithCursor(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())

	cursorTime := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	rowTime := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	rows := makeStorageRows(userID, 3, rowTime) // limit=2, returns 3 → has next page

	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(testUser(userID, currency.USD), nil)
	tables.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 2 &&
			f.Offset == 20 &&
			f.MaxCreationTime != nil &&
			f.MaxCreationTime.Equal(cursorTime)
	})).Return(rows, nil)
	tables.exchangeRates.EXPECT().ListByTarget(mock.Anything, currency.USD).Return(nil, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, &TransactionCursor{
		Position:        20,
		Limit:           2,
		MaxCreationTime: cursorTime,
	})

	assert.NoError(t, err)
	assert.Len(t, txs, 2)

	assert.NotNil(t, nextCursor)
	assert.Equal(t, 22, nextCursor.Position)
	assert.Equal(t, 2, nextCursor.Limit)
	assert.Equal(t, cursorTime, nextCursor.MaxCreationTime, "echoed from cursor, not overridden by row data")
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())

	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(testUser(userID, currency.USD), nil)
	tables.transactions.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), userID, nil)

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_RateStorageError(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())

	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(testUser(userID, currency.GBP), nil)
	tables.transactions.EXPECT().List(mock.Anything, mock.Anything).
		Return(makeStorageRows(userID, 1, time.Now()), nil)
	tables.exchangeRates.EXPECT().ListByTarget(mock.Anything, currency.GBP).
		Return(nil, errors.New("rates unavailable"))

	_, _, err := svc.ListTransactions(context.Background(), userID, nil)

	assert.EqualError(t, err, "rates unavailable")
}

// -- GetTransaction tests --

func TestGetTransaction_Converts(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())
	row := makeStorageRows(userID, 1, time.Now())[0]
	row.Amount = decimal.RequireFromString("20.00")
	row.Currency = currency.GBP

	tables.transactions.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)
	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(testUser(userID, currency.EUR), nil)
	tables.exchangeRates.EXPECT().Find(mock.Anything, currency.GBP, currency.EUR).Return(&sqlconfig.ExchangeRate{
		Base: currency.GBP, Target: currency.EUR, Rate: decimal.RequireFromString("1.1725"),
	}, nil)

	tx, err := svc.GetTransaction(context.Background(), userID, row.ID)

	require.NoError(t, err)
	assert.Equal(t, "23.45", tx.Value.Amount.StringFixed(2))
	assert.Equal(t, currency.EUR, tx.Value.Currency)
	assert.Equal(t, currency.GBP, tx.Original.Currency)
}

func TestGetTransaction_SameCurrencySkipsRateLookup(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())
	row := makeStorageRows(userID, 1, time.Now())[0]

	tables.transactions.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)
	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(testUser(userID, currency.USD), nil)

	tx, err := svc.GetTransaction(context.Background(), userID, row.ID)

	require.NoError(t, err)
	assert.Equal(t, "5", tx.Value.Amount.String())
	tables.exchangeRates.AssertNotCalled(t, "Find")
}

func TestGetTransaction_MissingRateFails(t *testing.T) {
	svc, tables := newTestService(t)
	userID := uuid.Must(uuid.NewV4())
	row := makeStorageRows(userID, 1, time.Now())[0]
	row.Currency = currency.EUR

	tables.transactions.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)
	tables.users.EXPECT().FindByID(mock.Anything, userID).Return(testUser(userID, currency.USD), nil)
	tables.exchangeRates.EXPECT().Find(mock.Anything, currency.EUR, currency.USD).Return(nil, sqlconfig.ErrNotFound)

	tx, err := svc.GetTransaction(context.Background(), userID, row.ID)

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, currency.ErrRateNotFound)
}

func TestGetTransaction_OtherUsersTransaction(t *testing.T) {
	svc, tables := newTestService(t)
	row := makeStorageRows(uuid.Must(uuid.NewV4()), 1, time.Now())[0]

	tables.transactions.EXPECT().FindByID(mock.Anything, row.ID).Return(row, nil)

	_, err := svc.GetTransaction(context.Background(), uuid.Must(uuid.NewV4()), row.ID)

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestGetTransaction_NotFound(t *testing.T) {
	svc, tables := newTestService(t)
	id := uuid.Must(uuid.NewV4())

	tables.transactions.EXPECT().FindByID(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.GetTransaction(context.Background(), uuid.Must(uuid.NewV4()), id)

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
