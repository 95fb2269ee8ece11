// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package ids

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalidID reports text rejected by an identifier grammar.
var ErrInvalidID = errors.New("invalid identifier")

func invalid(kind, text string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidID, kind, text)
}

// parseUpper normalizes s to upper case and checks it against patterns.
func parseUpper(kind, s string, patterns ...*regexp.Regexp) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, p := range patterns {
		if p.MatchString(v) {
			return v, nil
		}
	}
	return "", invalid(kind, s)
}

// parseText accepts trimmed text of 1..max runes.
func parseText(kind, s string, max int) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" || utf8.RuneCountInString(v) > max {
		return "", invalid(kind, s)
	}
	return v, nil
}
