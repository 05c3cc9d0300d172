package record

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a row amount that may be absent. Values that fail to parse are absent.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount returns a present amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Value: d, Valid: true}
}

// ParseAmount reads a textual amount. Blank or non-numeric text yields an absent amount.
func ParseAmount(raw string) Amount {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}
	}
	return NewAmount(d)
}

// Usable reports whether the amount can be applied to balances: present and non-zero.
func (a Amount) Usable() bool {
	return a.Valid && !a.Value.IsZero()
}

// MarshalJSON writes the amount as a JSON number, or null when absent.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Value.String()), nil
}

// UnmarshalJSON accepts numbers, numeric strings, blanks and null. Anything else is
// absorbed as an absent amount rather than failing the whole payload.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	*a = ParseAmount(string(data))
	return nil
}
