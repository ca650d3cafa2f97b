package money

import (
	"errors"
)

var (
	// ErrIncorrectInput is returned when an amount cannot be
	// parsed as an exact decimal.
	ErrIncorrectInput = errors.New("incorrect money input")

	// ErrCurrencyMismatch is returned when an operation mixes
	// two Money values of different, non-zero currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInvalidOperation is returned when an operation is
	// mathematically disallowed regardless of currency.
	ErrInvalidOperation = errors.New("invalid operation")
)
