package models

import (
	"fmt"
	"strconv"
)

// Id prefixes per entity type
const (
	CustomerPrefix byte = 'C'
	StaffPrefix    byte = 'S'
	OrderPrefix    byte = 'O'
	PaymentPrefix  byte = 'P'
)

// DefaultIDWidth is the zero-padded width of the numeric suffix.
const DefaultIDWidth = 3

// ID is a record identifier such as C007: an uppercase letter prefix and a
// zero-padded number. The zero value means "not assigned".
type ID struct {
	Prefix byte
	Number int
	Width  int
}

// NewID builds an identifier with the default width.
func NewID(prefix byte, number int) ID {
	return ID{Prefix: prefix, Number: number, Width: DefaultIDWidth}
}

// SeedID is the value next-id generation starts from on an empty table.
func SeedID(prefix byte) ID {
	return NewID(prefix, 0)
}

// ParseID parses identifiers like "C007". The width of the numeric part is
// kept so that formatting round-trips.
func ParseID(s string) (ID, error) {
	if len(s) < 2 {
		return ID{}, fmt.Errorf("invalid id %q: too short", s)
	}
	prefix := s[0]
	if prefix < 'A' || prefix > 'Z' {
		return ID{}, fmt.Errorf("invalid id %q: prefix must be an uppercase letter", s)
	}
	digits := s[1:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return ID{}, fmt.Errorf("invalid id %q: suffix must be numeric", s)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return ID{}, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return ID{Prefix: prefix, Number: n, Width: len(digits)}, nil
}

// ParseIDWithPrefix parses s and checks that it belongs to the given type.
func ParseIDWithPrefix(s string, prefix byte) (ID, error) {
	id, err := ParseID(s)
	if err != nil {
		return ID{}, err
	}
	if id.Prefix != prefix {
		return ID{}, fmt.Errorf("invalid id %q: expected prefix %c", s, prefix)
	}
	return id, nil
}

func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	width := id.Width
	if width <= 0 {
		width = DefaultIDWidth
	}
	return fmt.Sprintf("%c%0*d", id.Prefix, width, id.Number)
}

// Next returns the identifier that follows id, keeping prefix and width.
func (id ID) Next() ID {
	next := id
	next.Number++
	if next.Width <= 0 {
		next.Width = DefaultIDWidth
	}
	return next
}

func (id ID) IsZero() bool {
	return id.Prefix == 0
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText accepts an empty string as the unassigned id.
func (id *ID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = ID{}
		return nil
	}
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
