package currency

import (
	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits kept after a conversion.
const Places = 2

// Money is an amount paired with the currency it is expressed in.
type Money struct {
	Amount   decimal.Decimal
	Currency Code
}

func NewMoney(amount decimal.Decimal, code Code) Money {
	return Money{Amount: amount, Currency: code}
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency.String()
}
