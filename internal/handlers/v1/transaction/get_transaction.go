package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-fx/internal/handlers/apierror"
	"github.com/carson-networks/budget-fx/internal/service"
)

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	UserID        string `path:"userID" format:"uuid" doc:"User UUID"`
	TransactionID string `path:"transactionID" format:"uuid" doc:"Transaction UUID"`
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/user/{userID}/transaction/{transactionID}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/user/{userID}/transaction/{transactionID}",
		Summary:     "Get transaction",
		Description: "Returns one transaction converted into the user's base currency. " +
			"Responds 422 when no exchange rate exists for the pair.",
		Tags: []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	transactionID, err := uuid.FromString(input.TransactionID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transactionID", err)
	}

	tx, err := h.TransactionService.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, apierror.From(err, "failed to get transaction")
	}

	return &GetTransactionOutput{Body: fromService(*tx)}, nil
}
