// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package wire

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/beevik/etree"
)

var (
	// ErrMissingElement reports an absent mandatory element or property.
	ErrMissingElement = errors.New("mandatory element missing")
	// ErrInvalidValue reports text that does not fit the expected grammar.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnexpectedElement reports a node of the wrong name or namespace.
	ErrUnexpectedElement = errors.New("unexpected element")
	// ErrEmptyDocument reports input without a root node.
	ErrEmptyDocument = errors.New("empty document")
)

// ParseError describes why a wire node could not be mapped to a message.
type ParseError struct {
	Type  string
	Field string
	Err   error
}

// NewParseError wraps err with the message type and field it occurred in.
func NewParseError(typ, field string, err error) *ParseError {
	return &ParseError{Type: typ, Field: field, Err: err}
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parsing %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("parsing %s.%s: %v", e.Type, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives parse failures out of band: when it happened, the
// offending node or text, and the error.
type ErrorHandler func(at time.Time, source any, err error)

// Report delivers err to h. A nil handler or a nil error is a no-op.
func (h ErrorHandler) Report(source any, err error) {
	if h == nil || err == nil {
		return
	}
	h(time.Now().UTC(), source, err)
}

// LogErrors returns an ErrorHandler writing warnings to logger.
func LogErrors(logger *slog.Logger) ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(at time.Time, source any, err error) {
		logger.Warn("OICP parse failure",
			"at", at,
			"source", Describe(source),
			"error", err)
	}
}

// Describe renders a wire node for diagnostics.
func Describe(source any) string {
	switch s := source.(type) {
	case nil:
		return ""
	case string:
		return s
	case *etree.Element:
		doc := etree.NewDocument()
		doc.SetRoot(s.Copy())
		out, err := doc.WriteToString()
		if err != nil {
			return "<" + s.FullTag() + ">"
		}
		return out
	case JSONObject:
		out, err := s.Marshal(false)
		if err != nil {
			return fmt.Sprintf("%v", map[string]any(s))
		}
		return string(out)
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprintf("%v", source)
}
