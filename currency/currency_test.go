package currency_test

import (
	"testing"

	"github.com/makeleaps/go-money/currency"
	"github.com/matryer/is"
	"github.com/pkg/errors"
)

func TestFromCode(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		c, err := currency.FromCode("USD")
		i.NoErr(err)

		i.Equal("USD", c.Code)
		i.Equal("840", c.Numeric)
		i.Equal("US Dollar", c.Name)
		i.Equal(2, c.Decimals)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		c, err := currency.FromCode("jpy")
		i.NoErr(err)

		i.Equal("JPY", c.Code)
		i.Equal(0, c.Decimals)
	})

	t.Run("UnknownCode", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		_, err := currency.FromCode("ZZZ")

		i.True(errors.Is(err, currency.ErrUnknownCurrency))

		i.Equal(`unknown currency: code "ZZZ"`, err.Error())
	})

	t.Run("EveryCodeLooksUpItself", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		for _, code := range currency.Codes() {
			c, err := currency.FromCode(code)
			i.NoErr(err)

			i.Equal(code, c.Code)
		}
	})
}

func TestMustFromCode(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		defer func() {
			i.True(recover() == nil)
		}()

		_ = currency.MustFromCode("EUR")
	})

	t.Run("UnknownCode", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		defer func() {
			err, ok := recover().(error)

			i.True(ok)
			i.True(errors.Is(err, currency.ErrUnknownCurrency))
		}()

		_ = currency.MustFromCode("ZZZ")
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("SameCodeOnly", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		// the 3-letter code is the sole identity key, every
		// other field is descriptive.
		a := currency.Currency{
			Code:     "ABC",
			Numeric:  "1000",
			Name:     "ABC Currency",
			Decimals: 2,
		}

		b := currency.Currency{
			Code:     "ABC",
			Numeric:  "1001",
			Name:     "ABC Currency (Same numeric code)",
			Decimals: 1,
		}

		i.True(a.Equal(b))
		i.True(b.Equal(a))
	})

	t.Run("DifferentCode", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := currency.MustFromCode("USD")
		b := currency.MustFromCode("EUR")

		i.True(!a.Equal(b))
	})

	t.Run("EmptyCodesNeverEqual", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		i.True(!currency.Currency{}.Equal(currency.Currency{}))
	})

	t.Run("EqualCode", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		c := currency.MustFromCode("USD")

		i.True(c.EqualCode("USD"))
		i.True(!c.EqualCode("EUR"))
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	i := is.New(t)

	i.Equal("XXX", currency.Default.Code)
	i.Equal("999", currency.Default.Numeric)
}

func TestCodes(t *testing.T) {
	t.Parallel()

	i := is.New(t)

	codes := currency.Codes()

	i.True(len(codes) > 100)

	// sorted ascending.
	for n := 1; n < len(codes); n++ {
		i.True(codes[n-1] < codes[n])
	}
}
