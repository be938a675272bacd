package model

import (
	"github.com/shopspring/decimal"
)

// Amount is a DECIMAL(10,2) column value. It scans from and binds to SQL
// through the embedded decimal, and marshals as a bare JSON number with two
// fraction digits.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns the amount f rounded to two fraction digits.
func NewAmount(f float64) Amount {
	return Amount{decimal.NewFromFloat(f).Round(2)}
}

// ParseAmount parses a decimal string such as "299.99".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}
