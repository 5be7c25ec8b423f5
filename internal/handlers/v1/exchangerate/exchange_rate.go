package exchangerate

import (
	"context"
	"time"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/operator/actions"
)

// ExchangeRate is the API model for one directional rate.
type ExchangeRate struct {
	Base      string `json:"base" doc:"ISO 4217 code converted from"`
	Target    string `json:"target" doc:"ISO 4217 code converted into"`
	Rate      string `json:"rate" doc:"Units of target per one unit of base"`
	UpdatedAt string `json:"updatedAt,omitempty" doc:"RFC3339 time of the last update"`
}

// actionProcessor runs write actions through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func fromCurrency(rate currency.ExchangeRate) ExchangeRate {
	resp := ExchangeRate{
		Base:   rate.Base.String(),
		Target: rate.Target.String(),
		Rate:   rate.Rate.String(),
	}
	if !rate.UpdatedAt.IsZero() {
		resp.UpdatedAt = rate.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
