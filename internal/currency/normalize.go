package currency

import (
	"context"
	"slices"
)

// Skipped records an item NormalizeLenient left in its original currency.
type Skipped struct {
	Index  int
	Base   Code
	Target Code
}

// NormalizeStrict converts every item into target. The first missing rate aborts the
// whole batch with a *RateNotFoundError and no result.
//
// value must return a pointer into the element it is given. items is not modified.
func NormalizeStrict[T any](ctx context.Context, items []T, target Code, rates RateTable, value func(*T) *Money) ([]T, error) {
	out := slices.Clone(items)
	for i := range out {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m := value(&out[i])
		converted, err := Convert(*m, target, rates)
		if err != nil {
			return nil, err
		}
		*m = converted
	}
	return out, nil
}

// NormalizeLenient converts every item it has a rate for. Items without a rate keep
// their original amount and currency and are reported in the skipped list; the rest
// of the batch still converts. The only error returned is the context's.
//
// value must return a pointer into the element it is given. items is not modified.
func NormalizeLenient[T any](ctx context.Context, items []T, target Code, rates RateTable, value func(*T) *Money) ([]T, []Skipped, error) {
	out := slices.Clone(items)
	var skipped []Skipped
	for i := range out {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		m := value(&out[i])
		converted, err := Convert(*m, target, rates)
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, Base: m.Currency, Target: target})
			continue
		}
		*m = converted
	}
	return out, skipped, nil
}
