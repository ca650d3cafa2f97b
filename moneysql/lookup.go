package moneysql

import (
	"fmt"

	"github.com/makeleaps/go-money/money"
)

// Lookup names a comparison between a stored Money column and a
// Money value. The names follow the usual ORM lookup spelling.
type Lookup string

// Supported lookups.
const (
	LookupExact  Lookup = "exact"
	LookupLt     Lookup = "lt"
	LookupLte    Lookup = "lte"
	LookupGt     Lookup = "gt"
	LookupGte    Lookup = "gte"
	LookupIsNull Lookup = "isnull"
)

// operator returns the SQL comparison operator for the lookup.
func (l Lookup) operator() (string, bool) {
	switch l {
	case LookupExact:
		return "=", true
	case LookupLt:
		return "<", true
	case LookupLte:
		return "<=", true
	case LookupGt:
		return ">", true
	case LookupGte:
		return ">=", true
	default:
		return "", false
	}
}

// Predicate builds the SQL condition comparing the Money stored
// in column against m. The condition always checks the amount
// and the currency columns together:
//
//	(price < ? AND price_currency = ?)
//
// with the amount and the currency code as the two arguments.
// Comparing the amount alone would match rows of any currency,
// which is exactly the silent bug this package exists to
// prevent.
//
// The isnull lookup carries no Money value; use NullPredicate
// for it. Unknown lookup names fail with ErrUnsupportedLookup.
func Predicate(
	column string,
	lookup Lookup,
	m money.Money,
) (string, []interface{}, error) {
	op, ok := lookup.operator()
	if !ok {
		return "", nil, fmt.Errorf(
			"%w: lookup %q is not supported for a money column",
			ErrUnsupportedLookup,
			string(lookup),
		)
	}

	cond := fmt.Sprintf(
		"(%s %s ? AND %s = ?)",
		column,
		op,
		CurrencyColumn(column),
	)

	return cond, []interface{}{
		m.Amount(),
		m.Currency().Code,
	}, nil
}

// NullPredicate builds the SQL condition testing whether any
// Money is stored in column. Absence is defined by the amount
// column alone; the currency column is not consulted.
func NullPredicate(column string, isNull bool) string {
	if isNull {
		return fmt.Sprintf("(%s IS NULL)", column)
	}

	return fmt.Sprintf("(%s IS NOT NULL)", column)
}
