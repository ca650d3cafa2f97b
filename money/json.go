package money

import (
	"encoding"
	"encoding/json"
)

var (
	// ensure Money implements text marshaller and unmarshaler interface.
	_ encoding.TextMarshaler   = (*Money)(nil)
	_ encoding.TextUnmarshaler = (*Money)(nil)

	// ensure Money implements json marshaller and unmarshaler interface.
	_ json.Unmarshaler = (*Money)(nil)
	_ json.Marshaler   = (*Money)(nil)
)

// moneyJSON is the two-value decomposition used on the wire:
// the amount as an exact decimal string and the 3-letter
// currency code, always together.
type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.amount.String(),
		Currency: m.Currency().Code,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Money) UnmarshalJSON(data []byte) error {
	var j moneyJSON

	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}

	v, err := NewFromString(j.Amount, j.Currency)
	if err != nil {
		return err
	}

	*m = v

	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// The form is the one produced by String, eg. "USD 123.45".
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *Money) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*m = v

	return nil
}
