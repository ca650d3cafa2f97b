package moneysql_test

import (
	"testing"

	"github.com/makeleaps/go-money/currency"
	"github.com/makeleaps/go-money/money"
	"github.com/makeleaps/go-money/moneysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyColumn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "price_currency", moneysql.CurrencyColumn("price"))
}

func TestField(t *testing.T) {
	t.Parallel()

	t.Run("RoundTrip", func(t *testing.T) {
		t.Parallel()

		m := money.Must(money.NewFromString("21.99", "USD"))

		f := moneysql.FromMoney(m)

		require.True(t, f.Amount.Valid)
		require.True(t, f.Currency.Valid)
		assert.Equal(t, "21.99", f.Amount.Decimal.String())
		assert.Equal(t, "USD", f.Currency.String)

		back, ok, err := f.Money()
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, back.Equal(m))
	})

	t.Run("NullAmountMeansNoMoney", func(t *testing.T) {
		t.Parallel()

		_, ok, err := moneysql.Null().Money()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("EmptyCurrencyResolvesToDefault", func(t *testing.T) {
		t.Parallel()

		f := moneysql.FromMoney(money.NewFromInt(5, currency.Currency{}))
		f.Currency.String = ""

		m, ok, err := f.Money()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "XXX", m.Currency().Code)
	})

	t.Run("NullCurrencyResolvesToDefault", func(t *testing.T) {
		t.Parallel()

		f := moneysql.FromMoney(money.NewFromInt(5, currency.Currency{}))
		f.Currency.Valid = false

		m, ok, err := f.Money()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "XXX", m.Currency().Code)
	})

	t.Run("UnknownStoredCurrency", func(t *testing.T) {
		t.Parallel()

		f := moneysql.FromMoney(money.NewFromInt(5, currency.Currency{}))
		f.Currency.String = "ZZZ"

		_, _, err := f.Money()
		require.ErrorIs(t, err, currency.ErrUnknownCurrency)
	})

	t.Run("ScanTargets", func(t *testing.T) {
		t.Parallel()

		// the members scan the raw column values directly.
		var f moneysql.Field

		require.NoError(t, f.Amount.Scan("19.99"))
		require.NoError(t, f.Currency.Scan("USD"))

		m, ok, err := f.Money()
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, m.Equal(money.Must(money.NewFromString("19.99", "USD"))))
	})

	t.Run("ScanNulls", func(t *testing.T) {
		t.Parallel()

		var f moneysql.Field

		require.NoError(t, f.Amount.Scan(nil))
		require.NoError(t, f.Currency.Scan(nil))

		_, ok, err := f.Money()
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
