package moneysql

import (
	"errors"
)

// ErrUnsupportedLookup is returned when a lookup name is not
// one of the supported Money lookups.
var ErrUnsupportedLookup = errors.New("unsupported lookup")
