package currency

import (
	"fmt"
	"sort"
	"strings"
)

// Currency describes one ISO 4217 currency.
//
// The 3-letter code is the sole identity key: two Currency
// values are equal iff their codes are equal. All other fields
// are descriptive.
type Currency struct {
	// Code is the 3-letter uppercase ISO 4217 code, eg. "USD".
	Code string

	// Numeric is the 3-digit ISO 4217 numeric code, eg. "840".
	Numeric string

	// Name is the human readable display name.
	Name string

	// Symbol is the conventional sign, eg. "$". May be empty.
	Symbol string

	// Decimals is the number of digits conventionally shown
	// after the decimal point.
	Decimals int

	// Countries lists the countries where the currency is used.
	Countries []string
}

// Equal reports whether c and other denote the same currency.
// Only the codes are compared, and both must be non-empty.
func (c Currency) Equal(other Currency) bool {
	return c.Code != "" && other.Code != "" && c.Code == other.Code
}

// EqualCode reports whether c denotes the currency named by code.
func (c Currency) EqualCode(code string) bool {
	return c.Code == code
}

// String returns the 3-letter code.
func (c Currency) String() string {
	return c.Code
}

// Default is the ISO 4217 "no currency" entry, XXX. It is the
// currency of Money values created without an explicit one.
var Default = currencies["XXX"]

// FromCode returns the Currency for a 3-letter ISO 4217 code.
// The lookup is case-insensitive.
func FromCode(code string) (Currency, error) {
	c, ok := currencies[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf(
			"%w: code %q",
			ErrUnknownCurrency,
			code,
		)
	}

	return c, nil
}

// MustFromCode returns the Currency for code and panics if the
// code is not known.
func MustFromCode(code string) Currency {
	c, err := FromCode(code)
	if err != nil {
		panic(err)
	}

	return c
}

// Codes returns the sorted list of all known currency codes.
func Codes() []string {
	codes := make([]string, 0, len(currencies))

	for code := range currencies {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}
