package currency

import (
	"errors"
	"fmt"
)

var (
	ErrRateNotFound        = errors.New("exchange rate not found")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// RateNotFoundError reports a missing (base, target) pair.
type RateNotFoundError struct {
	Base   Code
	Target Code
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("exchange rate not found: %s -> %s", e.Base, e.Target)
}

func (e *RateNotFoundError) Is(target error) bool {
	return target == ErrRateNotFound
}
