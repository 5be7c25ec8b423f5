package currency

// Convert expresses value in target using rates.
//
// A value already in target is returned unchanged, without rounding. Otherwise the
// amount is multiplied by the base->target rate and rounded half away from zero to
// Places digits. A missing pair yields a *RateNotFoundError.
func Convert(value Money, target Code, rates RateTable) (Money, error) {
	if value.Currency == target {
		return value, nil
	}

	rate, ok := rates.Lookup(value.Currency, target)
	if !ok {
		return Money{}, &RateNotFoundError{Base: value.Currency, Target: target}
	}

	return Money{
		Amount:   value.Amount.Mul(rate).Round(Places),
		Currency: target,
	}, nil
}
