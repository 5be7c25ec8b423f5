package currency

import (
	"fmt"
	"strings"
)

// Code is an ISO 4217 currency code.
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	HUF Code = "HUF"
	CHF Code = "CHF"
	JPY Code = "JPY"
	CAD Code = "CAD"
	PLN Code = "PLN"
)

var supported = map[Code]struct{}{
	USD: {}, EUR: {}, GBP: {}, HUF: {}, CHF: {}, JPY: {}, CAD: {}, PLN: {},
}

// Supported returns every code the application accepts.
func Supported() []Code {
	return []Code{USD, EUR, GBP, HUF, CHF, JPY, CAD, PLN}
}

// ParseCode normalizes s and checks it against the supported set.
func ParseCode(s string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !code.Valid() {
		return "", fmt.Errorf("%w: %q, expected one of %s", ErrUnsupportedCurrency, s, supportedList())
	}
	return code, nil
}

func supportedList() string {
	codes := Supported()
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = code.String()
	}
	return strings.Join(names, ", ")
}

func (c Code) Valid() bool {
	_, ok := supported[c]
	return ok
}

func (c Code) String() string {
	return string(c)
}
