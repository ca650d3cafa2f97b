package money

import (
	"fmt"
	"strings"

	"github.com/makeleaps/go-money/currency"
	"github.com/shopspring/decimal"
)

// Money represents an exact decimal amount of one currency.
//
// The zero value is "no money" of the default currency.
// Money values are immutable; operations never modify their
// receiver and return a new value instead.
type Money struct {
	// exact decimal value of the amount, never a binary float.
	amount decimal.Decimal

	// the ISO 4217 currency of the amount.
	currency currency.Currency
}

// New creates a Money from an exact decimal amount.
// A zero-value cur resolves to currency.Default.
func New(amount decimal.Decimal, cur currency.Currency) Money {
	if cur.Code == "" {
		cur = currency.Default
	}

	return Money{
		amount:   amount,
		currency: cur,
	}
}

// NewFromInt creates a Money from an integer amount of whole
// currency units.
func NewFromInt(amount int64, cur currency.Currency) Money {
	return New(decimal.NewFromInt(amount), cur)
}

// NewFromString creates a Money from a decimal string amount and
// a 3-letter currency code. An empty code resolves to the
// default currency.
//
// There is intentionally no constructor taking a binary float:
// floats lose precision silently, convert them to a string or a
// decimal.Decimal explicitly instead.
func NewFromString(amount, code string) (Money, error) {
	a, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf(
			"%w: amount %q is not a valid decimal",
			ErrIncorrectInput,
			amount,
		)
	}

	cur := currency.Default

	if code != "" {
		cur, err = currency.FromCode(code)
		if err != nil {
			return Money{}, err
		}
	}

	return New(a, cur), nil
}

// Parse parses the string form produced by String, eg.
// "USD 123.45". A bare decimal string such as "123.45" parses
// with the default currency.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)

	if a, err := decimal.NewFromString(s); err == nil {
		return New(a, currency.Default), nil
	}

	if len(s) < 3 {
		return Money{}, parseError(s)
	}

	cur, err := currency.FromCode(s[:3])
	if err != nil {
		return Money{}, parseError(s)
	}

	a, err := decimal.NewFromString(strings.TrimSpace(s[3:]))
	if err != nil {
		return Money{}, parseError(s)
	}

	return New(a, cur), nil
}

func parseError(s string) error {
	return fmt.Errorf(
		"%w: value %q is not formatted as 'XXX 123.45'",
		ErrIncorrectInput,
		s,
	)
}

// Must returns m if err is nil and panics otherwise.
func Must(m Money, err error) Money {
	if err != nil {
		panic(err)
	}

	return m
}

// Zero returns a Money of amount 0 in the given currency.
func Zero(cur currency.Currency) Money {
	return New(decimal.Zero, cur)
}

// Amount returns the exact decimal value of m.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency of m.
func (m Money) Currency() currency.Currency {
	if m.currency.Code == "" {
		return currency.Default
	}

	return m.currency
}

// checkCurrency fails when m and other do not agree on currency.
func (m Money) checkCurrency(other Money) error {
	if m.Currency().Equal(other.Currency()) {
		return nil
	}

	return fmt.Errorf(
		"%w: %s != %s",
		ErrCurrencyMismatch,
		m.Currency(),
		other.Currency(),
	)
}

// Add returns m + other in the shared currency.
// It fails with ErrCurrencyMismatch when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}

	return New(m.amount.Add(other.amount), m.Currency()), nil
}

// Sub returns m - other in the shared currency.
// It fails with ErrCurrencyMismatch when the currencies differ.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}

	return New(m.amount.Sub(other.amount), m.Currency()), nil
}

// Mul returns m scaled by a dimensionless factor, currency
// unchanged. Multiplying two Money values is not defined, which
// the signature enforces: the factor is a bare decimal.
func (m Money) Mul(factor decimal.Decimal) Money {
	return New(m.amount.Mul(factor), m.Currency())
}

// Div returns m divided by a dimensionless divisor, currency
// unchanged. Dividing by another Money value is ambiguous and
// not defined; divide the .Amount() values explicitly to obtain
// a ratio. It fails with ErrInvalidOperation on a zero divisor.
func (m Money) Div(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, fmt.Errorf(
			"%w: division by zero",
			ErrInvalidOperation,
		)
	}

	return New(m.amount.Div(divisor), m.Currency()), nil
}

// Neg returns m with the amount negated, currency unchanged.
func (m Money) Neg() Money {
	return New(m.amount.Neg(), m.Currency())
}

// Equal reports whether m and other hold the same amount of the
// same currency. Money of different currencies is never equal,
// except that zero amounts are currency-agnostic: two zero
// Money values are equal whatever their currencies.
func (m Money) Equal(other Money) bool {
	if m.Currency().Equal(other.Currency()) {
		return m.amount.Equal(other.amount)
	}

	return m.amount.IsZero() && other.amount.IsZero()
}

// Cmp compares m and other numerically, returning -1, 0 or 1.
// It fails with ErrCurrencyMismatch when the currencies differ,
// unless either amount is zero: a zero is currency-agnostic and
// orders against any Money.
func (m Money) Cmp(other Money) (int, error) {
	if !m.amount.IsZero() && !other.amount.IsZero() {
		if err := m.checkCurrency(other); err != nil {
			return 0, err
		}
	}

	return m.amount.Cmp(other.amount), nil
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}

	return c < 0, nil
}

// LessThanOrEqual reports whether m <= other.
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}

	return c <= 0, nil
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}

	return c > 0, nil
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}

	return c >= 0, nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String returns "<CODE> <amount>" with the amount in its
// canonical decimal form (trailing zeros trimmed), eg.
// "USD 123.25". Parse accepts this form back.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency(), m.amount)
}

// StringFixed returns "<CODE> <amount>" with the amount rounded
// to the currency's conventional number of decimal places, eg.
// "USD 21.99" or "JPY 123". The stored amount is not modified.
func (m Money) StringFixed() string {
	return fmt.Sprintf(
		"%s %s",
		m.Currency(),
		m.amount.StringFixed(int32(m.Currency().Decimals)),
	)
}
