package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Endpoint is one route advertised by the welcome envelope.
type Endpoint struct {
	Route       string
	Description string
}

// Endpoints encodes as a JSON object whose keys keep slice order.
type Endpoints []Endpoint

// MarshalJSON implements json.Marshaler.
func (e Endpoints) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ep := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ep.Route)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ep.Description)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping document order.
func (e *Endpoints) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("endpoints: expected object, got %v", tok)
	}

	out := Endpoints{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		route, _ := tok.(string)

		var description string
		if err := dec.Decode(&description); err != nil {
			return fmt.Errorf("endpoints: %s: %w", route, err)
		}
		out = append(out, Endpoint{Route: route, Description: description})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*e = out
	return nil
}

// Lookup returns the description of route.
func (e Endpoints) Lookup(route string) (string, bool) {
	for _, ep := range e {
		if ep.Route == route {
			return ep.Description, true
		}
	}
	return "", false
}
