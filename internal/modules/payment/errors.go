package payment

import "errors"

var (
	ErrAmountAndCurrencyRequired = errors.New("amount and currency are required")
	ErrIntentIDRequired          = errors.New("payment intent id is required")
)
