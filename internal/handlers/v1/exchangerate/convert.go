package exchangerate

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/handlers/apierror"
)

type ConvertBody struct {
	Amount   string `json:"amount" doc:"Decimal amount to convert"`
	Currency string `json:"currency" minLength:"3" maxLength:"3" doc:"ISO 4217 code of amount"`
	Target   string `json:"target" minLength:"3" maxLength:"3" doc:"ISO 4217 code to convert into"`
}

type ConvertInput struct {
	Body ConvertBody
}

type ConvertResponseBody struct {
	Amount   string `json:"amount" doc:"Converted amount, rounded to two places"`
	Currency string `json:"currency" doc:"ISO 4217 code of amount"`
}

type ConvertOutput struct {
	Body ConvertResponseBody
}

type amountConverter interface {
	ConvertAmount(ctx context.Context, value currency.Money, target currency.Code) (currency.Money, error)
}

// ConvertHandler handles POST /v1/exchange-rate/convert.
type ConvertHandler struct {
	RateService amountConverter
}

func NewConvertHandler(svc amountConverter) *ConvertHandler {
	return &ConvertHandler{RateService: svc}
}

func (h *ConvertHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "convert-amount",
		Method:      http.MethodPost,
		Path:        "/v1/exchange-rate/convert",
		Summary:     "Convert an amount",
		Description: "Converts an amount using the stored rate for the exact pair. Responds 422 when no such rate exists.",
		Tags:        []string{"Exchange rates"},
	}, h.handle)
}

func parseConvertInput(input *ConvertInput) (currency.Money, currency.Code, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return currency.Money{}, "", huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	from, err := currency.ParseCode(input.Body.Currency)
	if err != nil {
		return currency.Money{}, "", huma.NewError(http.StatusBadRequest, "invalid currency", err)
	}
	target, err := currency.ParseCode(input.Body.Target)
	if err != nil {
		return currency.Money{}, "", huma.NewError(http.StatusBadRequest, "invalid target", err)
	}
	return currency.NewMoney(amount, from), target, nil
}

func (h *ConvertHandler) handle(ctx context.Context, input *ConvertInput) (*ConvertOutput, error) {
	value, target, err := parseConvertInput(input)
	if err != nil {
		return nil, err
	}

	converted, err := h.RateService.ConvertAmount(ctx, value, target)
	if err != nil {
		return nil, apierror.From(err, "failed to convert amount")
	}

	return &ConvertOutput{Body: ConvertResponseBody{
		Amount:   converted.Amount.StringFixed(currency.Places),
		Currency: converted.Currency.String(),
	}}, nil
}
