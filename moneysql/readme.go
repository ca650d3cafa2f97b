// Package moneysql maps a Money value onto two database columns:
// a decimal amount column and a 3-letter currency code column
// named "<column>_currency".
//
// A stored Money is only ever reconstructed from both columns
// together, and query predicates built by this package always
// compare the amount and the currency columns together, so rows
// of a different currency can never match an amount-only
// condition.
//
// The package speaks plain database/sql and emits portable SQL
// fragments; it is not tied to one driver or query builder.
//
// Note: the amount must be stored in an exact decimal column
// (eg. NUMERIC). A storage engine that coerces fixed-precision
// decimals into integers silently corrupts fractional amounts.
package moneysql
