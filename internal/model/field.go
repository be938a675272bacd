package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Field is a request value bound to a column as the client sent it. Only
// presence is checked here; whether the value fits the column is up to the
// database. Numbers keep their literal text, so 1 and 1.0 reach the driver
// as "1" and "1.0". Arrays and objects are bound as their JSON text.
type Field struct {
	value   interface{}
	present bool
}

// NewField returns a present field holding v, or an absent one when v is nil.
func NewField(v interface{}) Field {
	return Field{value: v, present: v != nil}
}

// Present reports whether the field was sent with a non-null value.
func (f Field) Present() bool {
	return f.present
}

// UnmarshalJSON implements json.Unmarshaler. null leaves the field absent.
func (f *Field) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*f = Field{}
	case json.Number:
		*f = NewField(t.String())
	case string, bool:
		*f = NewField(t)
	default:
		*f = NewField(string(bytes.TrimSpace(data)))
	}
	return nil
}

// Value implements driver.Valuer. An absent field binds as NULL.
func (f Field) Value() (driver.Value, error) {
	if v, ok := f.value.(driver.Valuer); ok {
		return v.Value()
	}
	return f.value, nil
}

// String returns the value for logging.
func (f Field) String() string {
	if !f.present {
		return "<absent>"
	}
	return fmt.Sprint(f.value)
}
