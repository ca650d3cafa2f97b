// Package money implements a Money type used to represent
// a monetary amount defined by the following properties:
//
// - amount, an exact arbitrary-precision decimal, never a
// binary float.
//
// - currency, one ISO 4217 currency from the ./currency package.
//
// Money values are immutable: every operation returns a new
// value. Arithmetic and comparisons between two Money values
// are only defined when both sides agree on currency; scaling
// by a dimensionless scalar is always defined and preserves
// the currency. A zero amount is currency-agnostic and may be
// compared against any Money.
package money
