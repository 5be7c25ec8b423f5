package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/handlers/apierror"
	"github.com/carson-networks/budget-fx/internal/logging"
	"github.com/carson-networks/budget-fx/internal/operator/actions"
	"github.com/carson-networks/budget-fx/internal/storage/sqlconfig"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Name            string  `json:"name" minLength:"1" doc:"Name of the transaction"`
	Description     *string `json:"description,omitempty" doc:"Free-form description"`
	Amount          string  `json:"amount" doc:"Decimal amount"`
	Currency        string  `json:"currency" minLength:"3" maxLength:"3" doc:"ISO 4217 currency code"`
	Type            string  `json:"type" enum:"Income,Expense" doc:"Transaction type"`
	GroupID         string  `json:"groupID,omitempty" format:"uuid" doc:"Optional group UUID"`
	TransactionDate string  `json:"transactionDate,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `path:"userID" format:"uuid" doc:"User UUID"`
	Body   CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"Created transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/user/{userID}/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/user/{userID}/transaction",
		Summary:       "Create transaction",
		Description:   "Records a transaction in the currency it was made in.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseTransactionType(s string) (sqlconfig.TransactionType, error) {
	switch s {
	case "Income":
		return sqlconfig.TransactionTypeIncome, nil
	case "Expense":
		return sqlconfig.TransactionTypeExpense, nil
	default:
		return 0, huma.NewError(http.StatusBadRequest, "type must be Income or Expense")
	}
}

func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	code, err := currency.ParseCode(input.Body.Currency)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid currency", err)
	}
	txType, err := parseTransactionType(input.Body.Type)
	if err != nil {
		return nil, err
	}

	var groupID *uuid.UUID
	if input.Body.GroupID != "" {
		parsed, err := uuid.FromString(input.Body.GroupID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid groupID", err)
		}
		groupID = &parsed
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}

	return &actions.CreateTransaction{
		UserID:          userID,
		Name:            input.Body.Name,
		Description:     input.Body.Description,
		Amount:          amount,
		Currency:        code,
		Type:            txType,
		GroupID:         groupID,
		TransactionDate: transactionDate,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.From(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", action.CreatedID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: action.CreatedID.String()},
	}, nil
}
