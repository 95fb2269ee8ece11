// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package ids

import (
	"bytes"
	"strings"

	"github.com/google/uuid"
)

// SessionID is the hub-wide identifier of a charging session.
type SessionID struct {
	value uuid.UUID
}

// NewSessionID returns a random session identifier.
func NewSessionID() SessionID {
	return SessionID{value: uuid.New()}
}

// ParseSessionID parses a UUID in its 36 character form.
func ParseSessionID(s string) (SessionID, error) {
	v := strings.TrimSpace(s)
	if len(v) != 36 {
		return SessionID{}, invalid("session id", s)
	}
	u, err := uuid.Parse(v)
	if err != nil || u == uuid.Nil {
		return SessionID{}, invalid("session id", s)
	}
	return SessionID{value: u}, nil
}

// TryParseSessionID is ParseSessionID reporting success as a bool.
func TryParseSessionID(s string) (SessionID, bool) {
	id, err := ParseSessionID(s)
	return id, err == nil
}

// MustParseSessionID is ParseSessionID panicking on error.
func MustParseSessionID(s string) SessionID {
	id, err := ParseSessionID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// UUID returns the underlying UUID.
func (id SessionID) UUID() uuid.UUID { return id.value }

func (id SessionID) String() string {
	if id.IsZero() {
		return ""
	}
	return id.value.String()
}

// IsZero reports whether id holds no value.
func (id SessionID) IsZero() bool { return id.value == uuid.Nil }

// Equal reports whether both identifiers are the same.
func (id SessionID) Equal(other SessionID) bool { return id.value == other.value }

// Compare orders identifiers by their bytes.
func (id SessionID) Compare(other SessionID) int {
	return bytes.Compare(id.value[:], other.value[:])
}

func (id SessionID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *SessionID) UnmarshalText(b []byte) error {
	v, err := ParseSessionID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
