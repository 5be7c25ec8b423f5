// Package apierror maps domain errors onto HTTP problem responses.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-fx/internal/currency"
	"github.com/carson-networks/budget-fx/internal/operator"
	"github.com/carson-networks/budget-fx/internal/operator/actions"
	"github.com/carson-networks/budget-fx/internal/service"
)

// From converts err into a huma status error. Errors without a known mapping
// become a 500 carrying fallback as the message.
func From(err error, fallback string) huma.StatusError {
	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}

	switch {
	case errors.Is(err, actions.ErrInvalidInput), errors.Is(err, currency.ErrUnsupportedCurrency):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, actions.ErrUserNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTransactionNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, actions.ErrUserExists):
		return huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, currency.ErrRateNotFound):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, operator.ErrStopped):
		return huma.NewError(http.StatusServiceUnavailable, "server is shutting down")
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
