package currency

import (
	"errors"
)

// ErrUnknownCurrency is returned when a code is not present
// in the ISO 4217 table.
var ErrUnknownCurrency = errors.New("unknown currency")
