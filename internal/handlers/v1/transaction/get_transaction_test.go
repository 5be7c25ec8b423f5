package transaction

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/service"
)

func newGetTestAPI(t *testing.T, svc transactionGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTransactionHandler(svc).Register(api)
	return api
}

func getPath(userID, transactionID uuid.UUID) string {
	return "/v1/user/" + userID.String() + "/transaction/" + transactionID.String()
}

func TestHTTP_GetTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	svc := new(mockTransactionService)
	svc.On("GetTransaction", mock.Anything, userID, txID).Return(&service.Transaction{
		ID:              txID,
		UserID:          userID,
		Name:            "Dinner",
		Original:        money("20.00", currency.GBP),
		Value:           money("23.45", currency.EUR),
		Type:            service.TransactionTypeExpense,
		GroupID:         &groupID,
		TransactionDate: date,
		CreatedAt:       date,
	}, nil)

	resp := newGetTestAPI(t, svc).Get(getPath(userID, txID))

	require.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "23.45", body.Amount)
	assert.Equal(t, "EUR", body.Currency)
	assert.Equal(t, "20", body.OriginalAmount)
	assert.Equal(t, "Expense", body.Type)
	require.NotNil(t, body.GroupID)
	assert.Equal(t, groupID.String(), *body.GroupID)
	assert.Equal(t, "2025-02-03T04:05:06Z", body.TransactionDate)
}

func TestHTTP_GetTransaction_RateNotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	svc := new(mockTransactionService)
	svc.On("GetTransaction", mock.Anything, userID, txID).
		Return(nil, &currency.RateNotFoundError{Base: currency.EUR, Target: currency.USD})

	resp := newGetTestAPI(t, svc).Get(getPath(userID, txID))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "EUR -> USD")
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	svc := new(mockTransactionService)
	svc.On("GetTransaction", mock.Anything, userID, txID).Return(nil, service.ErrTransactionNotFound)

	resp := newGetTestAPI(t, svc).Get(getPath(userID, txID))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
