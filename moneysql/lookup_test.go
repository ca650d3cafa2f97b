package moneysql_test

import (
	"testing"

	"github.com/makeleaps/go-money/money"
	"github.com/makeleaps/go-money/moneysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicate(t *testing.T) {
	t.Parallel()

	m := money.Must(money.NewFromString("100.00", "USD"))

	t.Run("ComparesAmountAndCurrencyTogether", func(t *testing.T) {
		t.Parallel()

		for lookup, op := range map[moneysql.Lookup]string{
			moneysql.LookupExact: "=",
			moneysql.LookupLt:    "<",
			moneysql.LookupLte:   "<=",
			moneysql.LookupGt:    ">",
			moneysql.LookupGte:   ">=",
		} {
			cond, args, err := moneysql.Predicate("price", lookup, m)
			require.NoError(t, err)

			assert.Equal(
				t,
				"(price "+op+" ? AND price_currency = ?)",
				cond,
			)

			require.Len(t, args, 2)
			assert.Equal(t, m.Amount(), args[0])
			assert.Equal(t, "USD", args[1])
		}
	})

	t.Run("IsNullCarriesNoMoney", func(t *testing.T) {
		t.Parallel()

		_, _, err := moneysql.Predicate("price", moneysql.LookupIsNull, m)

		require.ErrorIs(t, err, moneysql.ErrUnsupportedLookup)
	})

	t.Run("UnknownLookup", func(t *testing.T) {
		t.Parallel()

		_, _, err := moneysql.Predicate("price", "contains", m)

		require.ErrorIs(t, err, moneysql.ErrUnsupportedLookup)
		assert.EqualError(
			t,
			err,
			`unsupported lookup: lookup "contains" is not supported for a money column`,
		)
	})
}

func TestNullPredicate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(price IS NULL)", moneysql.NullPredicate("price", true))
	assert.Equal(
		t,
		"(price IS NOT NULL)",
		moneysql.NullPredicate("price", false),
	)
}
