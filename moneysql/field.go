package moneysql

import (
	"database/sql"

	"github.com/makeleaps/go-money/money"
	"github.com/shopspring/decimal"
)

// currencySuffix is appended to the amount column name to form
// the currency column name.
const currencySuffix = "_currency"

// CurrencyColumn returns the name of the currency column paired
// with the given amount column, eg. "price" -> "price_currency".
func CurrencyColumn(column string) string {
	return column + currencySuffix
}

// Field is the scan and insert target for one Money stored as
// two columns. Scan the amount column into Amount and the
// currency column into Currency:
//
//	var f moneysql.Field
//	err := row.Scan(&f.Amount, &f.Currency)
//	m, ok, err := f.Money()
//
// Both members implement sql.Scanner and driver.Valuer, so a
// Field decomposed with FromMoney passes straight into Exec
// arguments.
type Field struct {
	Amount   decimal.NullDecimal
	Currency sql.NullString
}

// FromMoney decomposes m into its two column values.
func FromMoney(m money.Money) Field {
	return Field{
		Amount: decimal.NullDecimal{
			Decimal: m.Amount(),
			Valid:   true,
		},
		Currency: sql.NullString{
			String: m.Currency().Code,
			Valid:  true,
		},
	}
}

// Null returns a Field representing no stored Money: both
// columns NULL.
func Null() Field {
	return Field{}
}

// Money reconstructs the stored Money from both columns.
// ok is false when the amount column was NULL, meaning no Money
// is stored. A NULL or empty currency column resolves to the
// default currency; an unknown stored code is an error.
func (f Field) Money() (m money.Money, ok bool, err error) {
	if !f.Amount.Valid {
		return money.Money{}, false, nil
	}

	code := ""
	if f.Currency.Valid {
		code = f.Currency.String
	}

	m, err = money.NewFromString(f.Amount.Decimal.String(), code)
	if err != nil {
		return money.Money{}, false, err
	}

	return m, true, nil
}
