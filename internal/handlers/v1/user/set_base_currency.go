package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/handlers/apierror"
	"github.com/carson-networks/budget-fx/internal/operator/actions"
)

// SetBaseCurrencyInput is the Huma input for changing a user's base currency.
type SetBaseCurrencyInput struct {
	UserID string `path:"userID" format:"uuid" doc:"User UUID"`
	Body   struct {
		BaseCurrency string `json:"baseCurrency" minLength:"3" maxLength:"3" doc:"ISO 4217 code"`
	}
}

// SetBaseCurrencyOutput is the Huma output for changing a user's base currency.
type SetBaseCurrencyOutput struct {
	Status int
}

// SetBaseCurrencyHandler handles PUT /v1/user/{userID}/currency.
type SetBaseCurrencyHandler struct {
	Operator actionProcessor
}

func NewSetBaseCurrencyHandler(op actionProcessor) *SetBaseCurrencyHandler {
	return &SetBaseCurrencyHandler{Operator: op}
}

func (h *SetBaseCurrencyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "set-base-currency",
		Method:        http.MethodPut,
		Path:          "/v1/user/{userID}/currency",
		Summary:       "Set base currency",
		Description:   "Changes the currency the user's transactions are normalized into.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *SetBaseCurrencyHandler) handle(ctx context.Context, input *SetBaseCurrencyInput) (*SetBaseCurrencyOutput, error) {
	id, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	code, err := currency.ParseCode(input.Body.BaseCurrency)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid baseCurrency", err)
	}

	if err := h.Operator.Process(ctx, &actions.SetBaseCurrency{UserID: id, Currency: code}); err != nil {
		return nil, apierror.From(err, "failed to set base currency")
	}

	return &SetBaseCurrencyOutput{Status: http.StatusNoContent}, nil
}
