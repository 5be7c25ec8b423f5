package currency

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate converts an amount in Base into Target. Rates are directional;
// a EUR->USD record says nothing about USD->EUR.
type ExchangeRate struct {
	Base      Code
	Target    Code
	Rate      decimal.Decimal
	UpdatedAt time.Time
}

type pair struct {
	base   Code
	target Code
}

// RateTable is an index of exchange rates by exact (base, target) pair.
// The zero value is an empty table.
type RateTable struct {
	rates map[pair]decimal.Decimal
}

// NewRateTable indexes rates. When a pair appears more than once the last record wins.
func NewRateTable(rates []ExchangeRate) RateTable {
	table := RateTable{rates: make(map[pair]decimal.Decimal, len(rates))}
	for _, r := range rates {
		table.rates[pair{base: r.Base, target: r.Target}] = r.Rate
	}
	return table
}

// Lookup returns the rate for base->target. No inversion or triangulation is attempted.
func (t RateTable) Lookup(base, target Code) (decimal.Decimal, bool) {
	rate, ok := t.rates[pair{base: base, target: target}]
	return rate, ok
}

func (t RateTable) Len() int {
	return len(t.rates)
}
