package exchangerate

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/handlers/apierror"
	"github.com/carson-networks/budget-fx/internal/logging"
	"github.com/carson-networks/budget-fx/internal/operator/actions"
)

// UpsertExchangeRateBody is the request body for storing a rate.
type UpsertExchangeRateBody struct {
	Base   string `json:"base" minLength:"3" maxLength:"3" doc:"ISO 4217 code converted from"`
	Target string `json:"target" minLength:"3" maxLength:"3" doc:"ISO 4217 code converted into"`
	Rate   string `json:"rate" doc:"Positive decimal, units of target per one unit of base"`
}

type UpsertExchangeRateInput struct {
	Body UpsertExchangeRateBody
}

type UpsertExchangeRateOutput struct {
	Body ExchangeRate
}

// UpsertExchangeRateHandler handles PUT /v1/exchange-rate.
type UpsertExchangeRateHandler struct {
	Operator    actionProcessor
	Invalidator actions.RateInvalidator
}

// NewUpsertExchangeRateHandler creates the handler. invalidator may be nil.
func NewUpsertExchangeRateHandler(op actionProcessor, invalidator actions.RateInvalidator) *UpsertExchangeRateHandler {
	return &UpsertExchangeRateHandler{Operator: op, Invalidator: invalidator}
}

func (h *UpsertExchangeRateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-exchange-rate",
		Method:      http.MethodPut,
		Path:        "/v1/exchange-rate",
		Summary:     "Set exchange rate",
		Description: "Creates or replaces the rate for one direction of a currency pair. The reverse direction is not implied.",
		Tags:        []string{"Exchange rates"},
	}, h.handle)
}

func parseUpsertExchangeRateInput(input *UpsertExchangeRateInput) (*actions.UpsertExchangeRate, error) {
	base, err := currency.ParseCode(input.Body.Base)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid base", err)
	}
	target, err := currency.ParseCode(input.Body.Target)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid target", err)
	}
	rate, err := decimal.NewFromString(input.Body.Rate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid rate", err)
	}
	return &actions.UpsertExchangeRate{Base: base, Target: target, Rate: rate}, nil
}

func (h *UpsertExchangeRateHandler) handle(ctx context.Context, input *UpsertExchangeRateInput) (*UpsertExchangeRateOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseUpsertExchangeRateInput(input)
	if err != nil {
		return nil, err
	}
	action.Invalidator = h.Invalidator

	if logData != nil {
		logData.AddData("pair", action.Base.String()+"/"+action.Target.String())
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.From(err, "failed to store exchange rate")
	}

	return &UpsertExchangeRateOutput{Body: fromCurrency(currency.ExchangeRate{
		Base:   action.Base,
		Target: action.Target,
		Rate:   action.Rate,
	})}, nil
}
