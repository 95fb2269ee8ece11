// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// JSONObject is a decoded JSON object. Numbers are json.Number.
type JSONObject map[string]any

// ParseJSONObject decodes data into a JSONObject.
func ParseJSONObject(data []byte) (JSONObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrEmptyDocument
	}
	return JSONObject(m), nil
}

// Marshal encodes o, optionally indented.
func (o JSONObject) Marshal(indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(o, "", "  ")
	}
	return json.Marshal(o)
}

// AsObject converts a decoded JSON value to a JSONObject.
func AsObject(v any) (JSONObject, bool) {
	switch m := v.(type) {
	case JSONObject:
		return m, true
	case map[string]any:
		return JSONObject(m), true
	}
	return nil, false
}

// Has reports whether key is present and not null.
func (o JSONObject) Has(key string) bool {
	v, ok := o[key]
	return ok && v != nil
}

// Text returns a string property.
func (o JSONObject) Text(key string) (string, bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", true, fmt.Errorf("%w: %q is not a string", ErrInvalidValue, key)
	}
	return strings.TrimSpace(s), true, nil
}

// RequiredText returns a mandatory string property.
func (o JSONObject) RequiredText(key string) (string, error) {
	s, ok, err := o.Text(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrMissingElement
	}
	return s, nil
}

// Number returns a numeric property. Numeric strings are accepted.
func (o JSONObject) Number(key string) (float64, bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, true, fmt.Errorf("%q: %w", key, err)
	}
	return f, true, nil
}

// Integer returns an integral property.
func (o JSONObject) Integer(key string) (int, bool, error) {
	f, ok, err := o.Number(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	if f != float64(int(f)) {
		return 0, true, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, key)
	}
	return int(f), true, nil
}

// Boolean returns a boolean property. "true"/"false" strings are accepted.
func (o JSONObject) Boolean(key string) (bool, bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return false, false, nil
	}
	switch b := v.(type) {
	case bool:
		return b, true, nil
	case string:
		r, err := ParseBool(b)
		return r, true, err
	}
	return false, true, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, key)
}

// Object returns a nested object property.
func (o JSONObject) Object(key string) (JSONObject, bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	m, ok := AsObject(v)
	if !ok {
		return nil, true, fmt.Errorf("%w: %q is not an object", ErrInvalidValue, key)
	}
	return m, true, nil
}

// Array returns an array property.
func (o JSONObject) Array(key string) ([]any, bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	switch a := v.(type) {
	case []any:
		return a, true, nil
	case []JSONObject:
		out := make([]any, len(a))
		for i := range a {
			out[i] = a[i]
		}
		return out, true, nil
	case []string:
		out := make([]any, len(a))
		for i := range a {
			out[i] = a[i]
		}
		return out, true, nil
	}
	return nil, true, fmt.Errorf("%w: %q is not an array", ErrInvalidValue, key)
}

// Strings returns an array of strings property.
func (o JSONObject) Strings(key string) ([]string, bool, error) {
	a, ok, err := o.Array(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	out := make([]string, 0, len(a))
	for _, v := range a {
		s, isString := v.(string)
		if !isString {
			return nil, true, fmt.Errorf("%w: %q holds a non-string element", ErrInvalidValue, key)
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out, true, nil
}

// SetOptional sets key to s unless s is empty.
func (o JSONObject) SetOptional(key, s string) {
	if s != "" {
		o[key] = s
	}
}

// Decimal renders v as a JSON number with at most three fraction digits.
func Decimal(v float64) json.Number {
	return json.Number(FormatDecimal(v))
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return ParseDecimal(n.String())
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		return ParseDecimal(n)
	}
	return 0, fmt.Errorf("%w: %v is not a number", ErrInvalidValue, v)
}
