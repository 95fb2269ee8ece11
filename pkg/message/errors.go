// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"errors"
	"fmt"

	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

var (
	// ErrMissingField reports an absent mandatory field at construction.
	ErrMissingField = errors.New("mandatory field missing")
	// ErrEmptyCollection reports a collection that must hold at least one element.
	ErrEmptyCollection = errors.New("collection must not be empty")
	// ErrInvalidField reports a field value outside its allowed range.
	ErrInvalidField = errors.New("invalid field value")
)

// FieldError is a construction invariant violation.
type FieldError struct {
	Type  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Type, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(typ, field string, err error) error {
	return &FieldError{Type: typ, Field: field, Err: err}
}

func parseError(typ, field string, err error) error {
	return wire.NewParseError(typ, field, err)
}

// finish delivers the outcome of a public parse call: on failure err is
// reported to onError, on success the hook replaces the candidate.
func finish[T any](v T, err error, source any, onError wire.ErrorHandler, hook func(T) T) (T, error) {
	if err != nil {
		onError.Report(source, err)
		var zero T
		return zero, err
	}
	if hook != nil {
		v = hook(v)
	}
	return v, nil
}
