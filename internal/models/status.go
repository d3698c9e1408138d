package models

import (
	"database/sql/driver"
	"fmt"
)

// Status is the completion state of a todo.
// It is persisted as its tag text ("Incomplete" / "Complete").
type Status string

const (
	StatusIncomplete Status = "Incomplete"
	StatusComplete   Status = "Complete"
)

// Statuses lists every valid status in display order
var Statuses = []Status{StatusIncomplete, StatusComplete}

// ParseStatus maps stored or user-supplied text to a Status.
// Unrecognized text is an error rather than a silent default.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusIncomplete, StatusComplete:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Valid reports whether s is one of the closed set of statuses
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

func (s Status) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer
func (s Status) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return string(s), nil
}

// Scan implements sql.Scanner, rejecting any text outside the enum
func (s *Status) Scan(src any) error {
	var text string
	switch v := src.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidStatus)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidStatus, src)
	}
	return s.UnmarshalText([]byte(text))
}
