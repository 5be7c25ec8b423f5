package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/logging"
	"github.com/carson-networks/budget-fx/internal/storage"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

type mockRateCache struct {
	mock.Mock
}

func (m *mockRateCache) Get(ctx context.Context, target currency.Code) ([]currency.ExchangeRate, int64, bool, error) {
	args := m.Called(ctx, target)
	rates, _ := args.Get(0).([]currency.ExchangeRate)
	version, _ := args.Get(1).(int64)
	return rates, version, args.Bool(2), args.Error(3)
}

func (m *mockRateCache) Set(ctx context.Context, target currency.Code, version int64, rates []currency.ExchangeRate) error {
	args := m.Called(ctx, target, version, rates)
	return args.Error(0)
}

func (m *mockRateCache) Invalidate(ctx context.Context, target currency.Code) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

type testTables struct {
	transactions  *sqlconfig.MockITransactionTable
	exchangeRates *sqlconfig.MockIExchangeRateTable
	users         *sqlconfig.MockIUserTable
	logs          *bytes.Buffer
}

func newTestStorage(t *testing.T) (*storage.Storage, *testTables) {
	t.Helper()
	tables := &testTables{
		transactions:  sqlconfig.NewMockITransactionTable(t),
		exchangeRates: sqlconfig.NewMockIExchangeRateTable(t),
		users:         sqlconfig.NewMockIUserTable(t),
		logs:          &bytes.Buffer{},
	}
	store := &storage.Storage{
		Transactions:  tables.transactions,
		ExchangeRates: tables.exchangeRates,
		Users:         tables.users,
	}
	return store, tables
}

func newTestLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := logging.SetupLogging("info")
	logger.Out = buf
	return logger
}
