package discount

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidCode = errors.New("invalid discount code format")

var codeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,50}$`)

// Code is a normalized (uppercase, trimmed) discount or promotion code.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// IDSet is a set of entity IDs used for applicability and exclusion rules.
// An empty set means "no restriction".
type IDSet map[uuid.UUID]struct{}

// ParseIDSet builds an IDSet from comma-joined UUID text as stored by the
// administration flow. Malformed entries are skipped, not rejected; a rule
// with a garbled entry still applies through its remaining IDs.
func ParseIDSet(raw string) IDSet {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	set := make(IDSet)
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		set[id] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func NewIDSet(ids ...uuid.UUID) IDSet {
	if len(ids) == 0 {
		return nil
	}
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s IDSet) IsEmpty() bool {
	return len(s) == 0
}

func (s IDSet) Contains(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// ContainsAny reports whether any of the given IDs is a member.
func (s IDSet) ContainsAny(ids []uuid.UUID) bool {
	for _, id := range ids {
		if s.Contains(id) {
			return true
		}
	}
	return false
}
