package exchangerate

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/handlers/apierror"
	"github.com/carson-networks/budget-fx/internal/logging"
)

type ListExchangeRatesInput struct {
	Target string `query:"target" required:"true" minLength:"3" maxLength:"3" doc:"ISO 4217 code to list rates into"`
}

type ListExchangeRatesResponseBody struct {
	Target string         `json:"target" doc:"Requested target currency"`
	Rates  []ExchangeRate `json:"rates" doc:"Every stored rate converting into target"`
}

type ListExchangeRatesOutput struct {
	Body ListExchangeRatesResponseBody
}

type rateLister interface {
	ListRates(ctx context.Context, target currency.Code) ([]currency.ExchangeRate, error)
}

// ListExchangeRatesHandler handles GET /v1/exchange-rate.
type ListExchangeRatesHandler struct {
	RateService rateLister
}

func NewListExchangeRatesHandler(svc rateLister) *ListExchangeRatesHandler {
	return &ListExchangeRatesHandler{RateService: svc}
}

func (h *ListExchangeRatesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-exchange-rates",
		Method:      http.MethodGet,
		Path:        "/v1/exchange-rate",
		Summary:     "List exchange rates",
		Tags:        []string{"Exchange rates"},
	}, h.handle)
}

func (h *ListExchangeRatesHandler) handle(ctx context.Context, input *ListExchangeRatesInput) (*ListExchangeRatesOutput, error) {
	logData := logging.GetLogData(ctx)

	target, err := currency.ParseCode(input.Target)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid target", err)
	}

	rates, err := h.RateService.ListRates(ctx, target)
	if err != nil {
		return nil, apierror.From(err, "failed to list exchange rates")
	}

	if logData != nil {
		logData.AddData("rateCount", len(rates))
	}

	resp := ListExchangeRatesResponseBody{
		Target: target.String(),
		Rates:  make([]ExchangeRate, len(rates)),
	}
	for i, rate := range rates {
		resp.Rates[i] = fromCurrency(rate)
	}
	return &ListExchangeRatesOutput{Body: resp}, nil
}
