// Package currency implements a Currency type describing one
// ISO 4217 currency, defined by the following properties:
//
// - code, the 3-letter shorthand, eg. USD for United States Dollar.
//
// - numeric, the 3-digit ISO 4217 numeric code, eg. 840 for USD.
//
// - decimals, the number of digits conventionally shown after
// the decimal point, eg. 2 for USD.
//
// It also holds the static table of all ISO 4217 currencies,
// built once at package init and read-only afterwards, so
// lookups are safe from concurrent goroutines.
package currency
